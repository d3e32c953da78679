package repository

import (
	"time"

	"lending-finance-backend/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Expose DB if needed
func (r *TransactionRepository) DB() *gorm.DB {
	return r.db
}

func (r *TransactionRepository) GetAll() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Preload("Category").Order("transaction_date DESC").Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.Preload("Category").First(&tx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) GetByDateRange(start, end time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Preload("Category").
		Where("transaction_date BETWEEN ? AND ?", start, end).
		Order("transaction_date DESC").
		Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) GetByType(t models.TransactionType) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Preload("Category").
		Where("type = ?", t).
		Order("transaction_date DESC").
		Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) Create(tx *models.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *TransactionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Transaction{}, "id = ?", id).Error
}

// TypeTotal is one GROUP BY row of a report query.
type TypeTotal struct {
	Type  models.TransactionType
	Count int64
	Sum   float64
}

// TotalsByType aggregates count and sum per transaction type over a period.
func (r *TransactionRepository) TotalsByType(start, end time.Time) ([]TypeTotal, error) {
	var rows []TypeTotal
	err := r.db.Model(&models.Transaction{}).
		Where("transaction_date BETWEEN ? AND ?", start, end).
		Select("type, COUNT(*) as count, COALESCE(SUM(amount),0) as sum").
		Group("type").
		Scan(&rows).Error
	return rows, err
}

// CategoryTotal is one GROUP BY row of the per-category breakdown.
type CategoryTotal struct {
	CategoryID   *uint
	CategoryName string
	Type         models.TransactionType
	Sum          float64
}

// TotalsByCategory aggregates amounts per category over a period.
func (r *TransactionRepository) TotalsByCategory(start, end time.Time) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := r.db.Model(&models.Transaction{}).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transaction_date BETWEEN ? AND ?", start, end).
		Select("transactions.category_id, COALESCE(categories.name, 'Sin categoría') as category_name, transactions.type, COALESCE(SUM(transactions.amount),0) as sum").
		Group("transactions.category_id, categories.name, transactions.type").
		Scan(&rows).Error
	return rows, err
}
