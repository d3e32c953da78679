package models

type Category struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"uniqueIndex" json:"name"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `gorm:"index" json:"type"`
	Color       string          `json:"color,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	Active      bool            `gorm:"index" json:"active"`
}
