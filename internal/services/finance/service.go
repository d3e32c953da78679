package finance

import (
	"encoding/json"
	"log"
	"time"

	"lending-finance-backend/internal/models"
	"lending-finance-backend/internal/repository"
	"lending-finance-backend/internal/services/importer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns transactions and categories and persists reviewed imports.
type Service struct {
	transactionRepo *repository.TransactionRepository
	categoryRepo    *repository.CategoryRepository
	parser          *importer.Service
	db              *gorm.DB
}

func NewService(
	transactionRepo *repository.TransactionRepository,
	categoryRepo *repository.CategoryRepository,
	parser *importer.Service,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		parser:          parser,
		db:              transactionRepo.DB(),
	}
}

func (s *Service) GetTransactions() ([]models.Transaction, error) {
	return s.transactionRepo.GetAll()
}

func (s *Service) GetTransaction(id uint) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

func (s *Service) GetTransactionsByRange(start, end time.Time) ([]models.Transaction, error) {
	return s.transactionRepo.GetByDateRange(start, end)
}

func (s *Service) GetTransactionsByType(t models.TransactionType) ([]models.Transaction, error) {
	return s.transactionRepo.GetByType(t)
}

func (s *Service) SaveTransaction(tx *models.Transaction) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	return s.transactionRepo.Create(tx)
}

func (s *Service) DeleteTransaction(id uint) error {
	return s.transactionRepo.Delete(id)
}

func (s *Service) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *Service) GetCategoriesByType(t models.TransactionType) ([]models.Category, error) {
	return s.categoryRepo.GetByType(t)
}

func (s *Service) GetCategory(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

func (s *Service) SaveCategory(category *models.Category) error {
	return s.categoryRepo.Save(category)
}

func (s *Service) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}

// Report summarizes income and expenses over a period.
type Report struct {
	Start        time.Time           `json:"start"`
	End          time.Time           `json:"end"`
	IncomeTotal  float64             `json:"income_total"`
	ExpenseTotal float64             `json:"expense_total"`
	Balance      float64             `json:"balance"`
	IncomeCount  int64               `json:"income_count"`
	ExpenseCount int64               `json:"expense_count"`
	ByCategory   []CategoryBreakdown `json:"by_category"`
}

type CategoryBreakdown struct {
	Category string                 `json:"category"`
	Type     models.TransactionType `json:"type"`
	Total    float64                `json:"total"`
}

// MonthlyReport aggregates one calendar month.
func (s *Service) MonthlyReport(year, month int) (Report, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return s.report(start, end)
}

// YearlyReport aggregates one calendar year.
func (s *Service) YearlyReport(year int) (Report, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	return s.report(start, end)
}

func (s *Service) report(start, end time.Time) (Report, error) {
	report := Report{Start: start, End: end}

	totals, err := s.transactionRepo.TotalsByType(start, end)
	if err != nil {
		return report, err
	}
	for _, row := range totals {
		switch row.Type {
		case models.TypeIncome:
			report.IncomeTotal = row.Sum
			report.IncomeCount = row.Count
		case models.TypeExpense:
			report.ExpenseTotal = row.Sum
			report.ExpenseCount = row.Count
		}
	}
	report.Balance = report.IncomeTotal - report.ExpenseTotal

	byCategory, err := s.transactionRepo.TotalsByCategory(start, end)
	if err != nil {
		return report, err
	}
	for _, row := range byCategory {
		report.ByCategory = append(report.ByCategory, CategoryBreakdown{
			Category: row.CategoryName,
			Type:     row.Type,
			Total:    row.Sum,
		})
	}

	return report, nil
}

// BatchSaveResult reports the outcome of persisting a reviewed import: each
// row is saved independently, so a partial failure leaves some rows persisted
// and others not.
type BatchSaveResult struct {
	BatchID uuid.UUID `json:"batch_id"`
	Saved   int       `json:"saved"`
	Failed  int       `json:"failed"`
}

// SaveImport persists the rows of a reviewed import one by one, tallying
// success and failure counts, and records an ImportBatch audit row. Rows are
// re-validated first; rows that are still invalid count as failed. There is
// no atomicity and no retry: failed rows stay with the user for re-editing.
func (s *Service) SaveImport(filename string, rows []models.ImportTransaction) (BatchSaveResult, error) {
	result := BatchSaveResult{BatchID: uuid.New()}

	validRows := 0
	for _, row := range rows {
		row = s.parser.Validate(row)
		if !row.IsValid {
			result.Failed++
			continue
		}
		validRows++

		tx, err := s.toTransaction(row)
		if err != nil {
			result.Failed++
			continue
		}
		if err := s.transactionRepo.Create(tx); err != nil {
			log.Printf("finance: saving imported row %q: %v", row.Description, err)
			result.Failed++
			continue
		}
		result.Saved++
	}

	details, _ := json.Marshal(map[string]interface{}{
		"rows_received": len(rows),
		"rows_valid":    validRows,
		"saved":         result.Saved,
		"failed":        result.Failed,
	})

	batch := &models.ImportBatch{
		ID:          result.BatchID,
		Filename:    filename,
		TotalRows:   len(rows),
		ValidRows:   validRows,
		InvalidRows: len(rows) - validRows,
		SavedCount:  result.Saved,
		FailedCount: result.Failed,
		Details:     details,
		CreatedAt:   time.Now(),
	}
	if err := s.db.Create(batch).Error; err != nil {
		return result, err
	}

	return result, nil
}

// toTransaction maps a valid candidate row to a persistent transaction,
// resolving the suggested category label against the live category list when
// possible.
func (s *Service) toTransaction(row models.ImportTransaction) (*models.Transaction, error) {
	date, err := time.Parse("2006-01-02", row.TransactionDate)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		Amount:          row.Amount.InexactFloat64(),
		Description:     row.Description,
		Type:            row.Type,
		TransactionDate: date,
		PaymentMethod:   row.PaymentMethod,
		Reference:       row.Reference,
		Notes:           row.Notes,
		CreatedAt:       time.Now(),
	}

	if row.SuggestedCategory != "" {
		if category, err := s.categoryRepo.FindByName(row.SuggestedCategory); err == nil {
			tx.CategoryID = &category.ID
		}
	}

	return tx, nil
}
