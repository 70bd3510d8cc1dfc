package Models

import (
	"gorm.io/gorm"
)

// EvidencePhoto stores the processed proof photo a staff member attaches to
// a completed task.
type EvidencePhoto struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index"`
	ReportDate string `json:"report_date" gorm:"index"`
	TaskID     string `json:"task_id" gorm:"index"`
	Path       string `json:"path"`
}
