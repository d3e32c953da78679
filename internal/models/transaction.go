package models

import (
	"time"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodCheck        PaymentMethod = "CHECK"
)

type Transaction struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Amount             float64         `gorm:"index" json:"amount"`
	Description        string          `json:"description"`
	Type               TransactionType `gorm:"index" json:"type"`
	CategoryID         *uint           `json:"categoryId,omitempty"`
	Category           *Category       `json:"category,omitempty"`
	TransactionDate    time.Time       `gorm:"column:transaction_date;index" json:"transactionDate"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod,omitempty"`
	Reference          string          `json:"reference,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency string          `json:"recurringFrequency,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}
