package lending

import (
	"fmt"
	"time"

	"lending-finance-backend/internal/models"
	"lending-finance-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service owns customers, loans, installments and loan payments.
type Service struct {
	customerRepo *repository.CustomerRepository
	loanRepo     *repository.LoanRepository
	paymentRepo  *repository.PaymentRepository
	db           *gorm.DB
}

func NewService(
	customerRepo *repository.CustomerRepository,
	loanRepo *repository.LoanRepository,
	paymentRepo *repository.PaymentRepository,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		loanRepo:     loanRepo,
		paymentRepo:  paymentRepo,
		db:           loanRepo.DB(),
	}
}

func (s *Service) GetCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *Service) GetCustomer(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *Service) SaveCustomer(customer *models.Customer) error {
	if customer.State == "" {
		customer.State = models.CustomerActive
	}
	return s.customerRepo.Save(customer)
}

func (s *Service) DeleteCustomer(id uint) error {
	return s.customerRepo.Delete(id)
}

func (s *Service) GetLoans() ([]models.Loan, error) {
	return s.loanRepo.GetAll()
}

func (s *Service) GetLoan(id uint) (*models.Loan, error) {
	return s.loanRepo.GetByID(id)
}

// CreateLoan persists a loan together with its generated installment
// schedule.
func (s *Service) CreateLoan(loan *models.Loan) error {
	if !loan.Principal.IsPositive() {
		return fmt.Errorf("loan principal must be positive")
	}
	if loan.TermMonths <= 0 {
		return fmt.Errorf("loan term must be at least one month")
	}
	if loan.Status == "" {
		loan.Status = models.LoanActive
	}
	if loan.DisbursementDate.IsZero() {
		loan.DisbursementDate = time.Now()
	}
	loan.Installments = BuildSchedule(loan)
	loan.CreatedAt = time.Now()
	return s.loanRepo.Create(loan)
}

func (s *Service) DeleteLoan(id uint) error {
	return s.loanRepo.Delete(id)
}

// Simulate builds a schedule without persisting anything, for preview.
func (s *Service) Simulate(loan models.Loan) []models.Installment {
	if loan.DisbursementDate.IsZero() {
		loan.DisbursementDate = time.Now()
	}
	return BuildSchedule(&loan)
}

func (s *Service) GetPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}

func (s *Service) GetPayment(id uint) (*models.Payment, error) {
	return s.paymentRepo.GetByID(id)
}

// RegisterPayment records a payment against an installment and marks the
// installment PAID once its payments cover the installment amount.
func (s *Service) RegisterPayment(payment *models.Payment) error {
	var installment models.Installment
	if err := s.db.First(&installment, "id = ?", payment.InstallmentID).Error; err != nil {
		return fmt.Errorf("installment %d: %w", payment.InstallmentID, err)
	}

	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	payment.CreatedAt = time.Now()
	if err := s.paymentRepo.Create(payment); err != nil {
		return err
	}

	payments, err := s.paymentRepo.GetByInstallment(installment.ID)
	if err != nil {
		return err
	}
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	if paid.GreaterThanOrEqual(installment.Amount) {
		return s.db.Model(&installment).Update("status", models.InstallmentPaid).Error
	}
	return nil
}

func (s *Service) DeletePayment(id uint) error {
	return s.paymentRepo.Delete(id)
}
