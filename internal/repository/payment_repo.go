package repository

import (
	"lending-finance-backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) GetByInstallment(installmentID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("installment_id = ?", installmentID).Order("payment_date ASC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, "id = ?", id).Error
}
