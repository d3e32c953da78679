package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImportBatch is the audit row written when a reviewed import is saved.
type ImportBatch struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Filename    string         `json:"filename"`
	TotalRows   int            `json:"totalRows"`
	ValidRows   int            `json:"validRows"`
	InvalidRows int            `json:"invalidRows"`
	SavedCount  int            `json:"savedCount"`
	FailedCount int            `json:"failedCount"`
	Details     datatypes.JSON `json:"details,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
