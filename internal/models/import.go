package models

import "github.com/shopspring/decimal"

// ImportTransaction is a candidate row produced by the statement parser,
// pending user review before it is persisted as a Transaction.
type ImportTransaction struct {
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Type              TransactionType `json:"type"`
	TransactionDate   string          `json:"transactionDate"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod,omitempty"`
	Reference         string          `json:"reference,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	IsValid           bool            `json:"isValid"`
	ValidationErrors  []string        `json:"validationErrors"`
	SuggestedCategory string          `json:"suggestedCategory,omitempty"`
	IsEditing         bool            `json:"isEditing"`
}

// ImportResult aggregates the candidate rows from one parsed statement.
// TotalRows always equals len(Transactions); rows that could not be split
// into the minimum number of fields are dropped before they reach the list.
type ImportResult struct {
	TotalRows    int                 `json:"totalRows"`
	ValidRows    int                 `json:"validRows"`
	InvalidRows  int                 `json:"invalidRows"`
	Transactions []ImportTransaction `json:"transactions"`
}

// Recount rebuilds the derived counters from the transaction list. Call it
// after any mutation of Transactions.
func (r *ImportResult) Recount() {
	r.TotalRows = len(r.Transactions)
	r.ValidRows = 0
	for _, t := range r.Transactions {
		if t.IsValid {
			r.ValidRows++
		}
	}
	r.InvalidRows = r.TotalRows - r.ValidRows
}

// Replace swaps the transaction at index i and recounts. Out-of-range
// indexes are ignored.
func (r *ImportResult) Replace(i int, t ImportTransaction) {
	if i < 0 || i >= len(r.Transactions) {
		return
	}
	r.Transactions[i] = t
	r.Recount()
}

// Remove deletes the transaction at index i and recounts. Out-of-range
// indexes are ignored.
func (r *ImportResult) Remove(i int) {
	if i < 0 || i >= len(r.Transactions) {
		return
	}
	r.Transactions = append(r.Transactions[:i], r.Transactions[i+1:]...)
	r.Recount()
}
