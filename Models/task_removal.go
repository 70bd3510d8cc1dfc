package Models

import (
	"gorm.io/gorm"
)

// TaskRemoval suppresses one template task for one user on one day without
// touching the template. Rows form an append-only overwrite log; the engine
// resolves them last-write-wins when it builds its removal set.
type TaskRemoval struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index:idx_removal_key"`
	ReportDate string `json:"report_date" gorm:"index:idx_removal_key"`
	TaskID     string `json:"task_id" gorm:"index:idx_removal_key"`
	IsRemoved  bool   `json:"is_removed"`
}
