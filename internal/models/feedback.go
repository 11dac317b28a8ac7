package models

import "gorm.io/gorm"

// Feedback is an anonymous free-text message from a visitor. Rows are
// append-only; no exposed operation edits or deletes them.
type Feedback struct {
	gorm.Model
	Message string `gorm:"not null"`
}
