package Models

import (
	"time"

	"gorm.io/gorm"
)

// AlertOverride is a manager's explicit alarm decision for one task row. It
// supersedes the automatically computed severity but never replaces it; the
// automatic judgment stays on the row for audit.
type AlertOverride struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index:idx_override_key"`
	ReportDate string    `json:"report_date" gorm:"index:idx_override_key"`
	TaskID     string    `json:"task_id" gorm:"index:idx_override_key"`
	IsAlarming bool      `json:"is_alarming"`
	Reason     string    `json:"reason"`
	SetBy      string    `json:"set_by"`
	SetAt      time.Time `json:"set_at"`
}
