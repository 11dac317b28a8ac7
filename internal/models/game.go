package models

import "gorm.io/gorm"

// Game represents a catalogued game entry.
// Name carries a unique index so duplicates fail at the store level instead
// of relying on a read-before-insert check.
type Game struct {
	gorm.Model
	Name             string `gorm:"size:100;uniqueIndex;not null"`
	Story            string
	BestPlayers      string
	Company          string `gorm:"size:100"`
	ImageFilename    string `gorm:"size:100"`
	OriginalFilename string `gorm:"size:255"` // display-only name of the uploaded file
}
