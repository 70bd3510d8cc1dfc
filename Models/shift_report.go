package Models

import (
	"gorm.io/gorm"
)

// ShiftReport is the end-of-day report a staff member submits. StartTime and
// EndTime are local "HH:MM" strings as entered; they are not validated here
// because the anchor builder tolerates malformed values.
type ShiftReport struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index"`
	ReportDate string `json:"report_date" gorm:"index"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Did        string `json:"did"`
	Handover   string `json:"handover"`
}
