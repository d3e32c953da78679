package repository

import (
	"strings"

	"lending-finance-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Preload("Loans").Order("last_name ASC").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("Loans.Installments").First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Search does a simple LIKE lookup over names and document number.
func (r *CustomerRepository) Search(query string) ([]models.Customer, error) {
	var customers []models.Customer
	like := "%" + strings.ToLower(query) + "%"
	err := r.db.
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR document_number LIKE ?", like, like, like).
		Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Save(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *CustomerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Customer{}, "id = ?", id).Error
}
