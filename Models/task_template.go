package Models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskTemplate defines a recurring staff task: which weekdays it applies to,
// its position in the day sequence and an optional minute budget.
type TaskTemplate struct {
	gorm.Model
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"`

	// EstimatedMinutes is nullable; a task without a budget can never be slow.
	EstimatedMinutes *int `json:"estimated_minutes"`

	// Weekday codes ("mon".."sun") stored as a JSON array.
	JSONScheduleDays datatypes.JSON `json:"-" gorm:"column:schedule_days"`

	// Decoded view of JSONScheduleDays, not stored.
	ScheduleDays []string `json:"schedule_days" gorm:"-"`
}

// DecodeScheduleDays fills ScheduleDays from the stored JSON column.
func (t *TaskTemplate) DecodeScheduleDays() {
	t.ScheduleDays = nil
	if len(t.JSONScheduleDays) == 0 {
		return
	}
	if err := json.Unmarshal(t.JSONScheduleDays, &t.ScheduleDays); err != nil {
		t.ScheduleDays = nil
	}
}

// EncodeScheduleDays writes ScheduleDays into the JSON column before saving.
func (t *TaskTemplate) EncodeScheduleDays() error {
	data, err := json.Marshal(t.ScheduleDays)
	if err != nil {
		return err
	}
	t.JSONScheduleDays = data
	return nil
}

func (t *TaskTemplate) AfterFind(tx *gorm.DB) error {
	t.DecodeScheduleDays()
	return nil
}
