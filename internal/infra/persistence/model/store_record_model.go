package model

import (
	"time"
)

// StoreRecordModel is the GORM-specific struct for the 'store_records' table.
// Each row holds one serialized store record addressed by its storage key.
type StoreRecordModel struct {
	Key       string `gorm:"column:record_key;type:varchar(255);primaryKey"`
	Payload   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreRecordModel) TableName() string {
	return "store_records"
}
