package repository

import (
	"lending-finance-backend/internal/models"

	"gorm.io/gorm"
)

type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// Expose DB if needed
func (r *LoanRepository) DB() *gorm.DB {
	return r.db
}

func (r *LoanRepository) GetAll() ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.Preload("Customer").Order("id ASC").Find(&loans).Error
	return loans, err
}

func (r *LoanRepository) GetByID(id uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.Preload("Customer").
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Preload("Installments.Payments").
		First(&loan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepository) GetByStatus(status models.LoanStatus) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.Preload("Customer").Where("status = ?", status).Find(&loans).Error
	return loans, err
}

// Create persists the loan together with its installment schedule.
func (r *LoanRepository) Create(loan *models.Loan) error {
	return r.db.Create(loan).Error
}

func (r *LoanRepository) Save(loan *models.Loan) error {
	return r.db.Save(loan).Error
}

func (r *LoanRepository) Delete(id uint) error {
	return r.db.Delete(&models.Loan{}, "id = ?", id).Error
}
