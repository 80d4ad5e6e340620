package model

import "time"

const (
	AnalysisKindSummary = "summary"
	AnalysisKindBias    = "bias"
	AnalysisKindAnswer  = "answer"
)

// AnalysisRecord is an audit row for one completed generator call.
// Records are written asynchronously by the audit worker; losing one never
// fails the user-facing request.
type AnalysisRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PaperID   uint      `gorm:"not null;index" json:"paper_id"`
	Kind      string    `gorm:"size:16;not null;index" json:"kind"`
	Question  string    `gorm:"type:text" json:"question,omitempty"`
	Output    string    `gorm:"type:text;not null" json:"output"`
	Model     string    `gorm:"size:128" json:"model"`
	CreatedAt time.Time `json:"created_at"`
}
