package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentNormal  PaymentType = "NORMAL"
	PaymentEarly   PaymentType = "EARLY"
	PaymentExtra   PaymentType = "EXTRA"
	PaymentLateFee PaymentType = "LATE_FEE"
)

type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	InstallmentID uint            `gorm:"index" json:"installmentId"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	Type          PaymentType     `json:"type"`
	CreatedAt     time.Time       `json:"createdAt"`
}
