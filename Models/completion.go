package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CompletionSourceStaff   = "staff"
	CompletionSourceManager = "manager"
)

// CompletionItem records that one task was completed by one user on one
// report date. TaskID is either a template id rendered as a string or a
// synthesized "custom:<public id>" for ad-hoc tasks. The collection handed
// to the engine is assumed deduplicated per (user, date, task).
type CompletionItem struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index:idx_completion_key,unique"`
	ReportDate  string    `json:"report_date" gorm:"index:idx_completion_key,unique"`
	TaskID      string    `json:"task_id" gorm:"index:idx_completion_key,unique"`
	CompletedAt time.Time `json:"completed_at"`
	CompletedBy string    `json:"completed_by"`
	Source      string    `json:"source"`
}
