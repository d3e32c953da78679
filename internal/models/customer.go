package models

type CustomerState string

const (
	CustomerActive   CustomerState = "ACTIVE"
	CustomerInactive CustomerState = "INACTIVE"
)

type Customer struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	DocumentNumber string        `gorm:"uniqueIndex" json:"documentNumber"`
	Email          string        `json:"email,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	State          CustomerState `gorm:"index" json:"state"`
	Loans          []Loan        `json:"loans,omitempty"`
}
