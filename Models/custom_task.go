package Models

import (
	"gorm.io/gorm"
)

// CustomTask is an ad-hoc task added for a single date, not derived from any
// template. It joins completion accounting under the id "custom:<PublicID>".
type CustomTask struct {
	gorm.Model
	PublicID         string `json:"public_id" gorm:"uniqueIndex"`
	ReportDate       string `json:"report_date" gorm:"index"`
	Title            string `json:"title"`
	EstimatedMinutes *int   `json:"estimated_minutes"`
	IsActive         bool   `json:"is_active" gorm:"default:true"`
}
