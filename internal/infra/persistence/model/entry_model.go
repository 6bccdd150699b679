// Package model holds GORM table mappings.
package model

import "time"

// EntryModel is one persisted storefront document in the 'storefront_entries' table.
type EntryModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "storefront_entries"
}
