package model

import "time"

// Paper is one uploaded document plus its AI-generated summary.
// FullText is immutable after creation and Summary is computed exactly once,
// before the row is inserted. Papers are never updated in place.
type Paper struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:256;not null" json:"title"`
	FullText  string    `gorm:"type:longtext;not null" json:"full_text,omitempty"`
	Summary   string    `gorm:"type:text;not null" json:"summary"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
