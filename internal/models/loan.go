package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InterestType string

const (
	InterestSimple InterestType = "SIMPLE"
	InterestFrench InterestType = "FRENCH"
)

type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanInactive LoanStatus = "INACTIVE"
	LoanClosed   LoanStatus = "CLOSED"
)

type Loan struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	CustomerID          uint            `gorm:"index" json:"customerId"`
	Customer            *Customer       `json:"customer,omitempty"`
	Principal           decimal.Decimal `gorm:"type:numeric(14,2)" json:"principal"`
	MonthlyInterestRate decimal.Decimal `gorm:"type:numeric(8,5)" json:"monthlyInterestRate"`
	TermMonths          int             `json:"termMonths"`
	InterestType        InterestType    `json:"interestType"`
	Status              LoanStatus      `gorm:"index" json:"status"`
	DisbursementDate    time.Time       `json:"disbursementDate"`
	Installments        []Installment   `json:"installments,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}
