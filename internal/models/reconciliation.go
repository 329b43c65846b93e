package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReconciliationEntry records an approve-and-ledger unit that could not be
// committed as a whole. Entries exist for manual reconciliation only and are
// never exposed through the API.
type ReconciliationEntry struct {
	ID        uint           `gorm:"primaryKey"`
	RequestID uint           `gorm:"index;not null"`
	Stage     string         `gorm:"size:32;not null"`
	Detail    string         `gorm:"type:text"`
	Snapshot  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
}
