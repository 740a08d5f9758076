package models

import "time"

// AuditFields holds the audit columns every table carries.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at" gorm:"column:created_at"`
	CreatedBy     string    `db:"created_by" gorm:"column:created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at" gorm:"column:last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by" gorm:"column:last_updated_by"`
}
