package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "PENDING"
	InstallmentPaid    InstallmentStatus = "PAID"
	InstallmentLate    InstallmentStatus = "LATE"
)

type Installment struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	LoanID           uint              `gorm:"index" json:"loanId"`
	Number           int               `json:"number"`
	DueDate          time.Time         `json:"dueDate"`
	Amount           decimal.Decimal   `gorm:"type:numeric(14,2)" json:"amount"`
	Interest         decimal.Decimal   `gorm:"type:numeric(14,2)" json:"interest"`
	PrincipalPart    decimal.Decimal   `gorm:"type:numeric(14,2)" json:"principalPart"`
	RemainingBalance decimal.Decimal   `gorm:"type:numeric(14,2)" json:"remainingBalance"`
	Status           InstallmentStatus `gorm:"index" json:"status"`
	Payments         []Payment         `json:"payments,omitempty"`
}
