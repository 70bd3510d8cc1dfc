package Engine

import (
	"testing"

	"Sentinel/Models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func makeTemplate(id uint, title string, days []string, sortOrder int, estimatedMinutes *int) Models.TaskTemplate {
	return Models.TaskTemplate{
		Model:            gorm.Model{ID: id},
		Title:            title,
		ScheduleDays:     days,
		SortOrder:        sortOrder,
		EstimatedMinutes: estimatedMinutes,
	}
}

func intPtr(v int) *int {
	return &v
}

func TestWeekdayCode(t *testing.T) {
	tests := []struct {
		dateKey string
		want    string
	}{
		{"2025-03-03", "mon"},
		{"2025-03-07", "fri"},
		{"2025-03-09", "sun"},
		{"not-a-date", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekdayCode(tt.dateKey), tt.dateKey)
	}
}

func TestResolveScheduleFiltersByWeekday(t *testing.T) {
	templates := []Models.TaskTemplate{
		makeTemplate(1, "Open shop", []string{"mon", "fri"}, 1, intPtr(15)),
		makeTemplate(2, "Weekend stock count", []string{"sat", "sun"}, 1, intPtr(30)),
		makeTemplate(3, "Close shop", []string{"mon", "tue", "wed", "thu", "fri"}, 9, nil),
	}

	// 2025-03-07 is a Friday
	scheduled := ResolveSchedule(templates, "2025-03-07")
	assert.Len(t, scheduled, 2)
	assert.Equal(t, "Open shop", scheduled[0].Title)
	assert.Equal(t, "Close shop", scheduled[1].Title)

	// Saturday picks up only the weekend task
	scheduled = ResolveSchedule(templates, "2025-03-08")
	assert.Len(t, scheduled, 1)
	assert.Equal(t, "Weekend stock count", scheduled[0].Title)
}

func TestResolveScheduleOrdering(t *testing.T) {
	templates := []Models.TaskTemplate{
		makeTemplate(7, "Third", []string{"mon"}, 5, nil),
		makeTemplate(4, "Second", []string{"mon"}, 2, nil),
		makeTemplate(2, "First", []string{"mon"}, 2, nil),
	}

	scheduled := ResolveSchedule(templates, "2025-03-03")
	assert.Len(t, scheduled, 3)
	// Sort order first, template id breaks the tie
	assert.Equal(t, uint(2), scheduled[0].ID)
	assert.Equal(t, uint(4), scheduled[1].ID)
	assert.Equal(t, uint(7), scheduled[2].ID)
}

func TestResolveScheduleUnparseableDate(t *testing.T) {
	templates := []Models.TaskTemplate{
		makeTemplate(1, "Open shop", []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}, 1, nil),
	}
	assert.Empty(t, ResolveSchedule(templates, "99-99-99"))
}
