package Engine

import (
	"testing"
	"time"

	"Sentinel/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func makeUser(id uint, name string) Models.User {
	return Models.User{Model: gorm.Model{ID: id}, Name: name, Permission: 1, IsActive: true}
}

func at(dateKey string, hour, minute int) time.Time {
	day, _ := time.ParseInLocation("2006-01-02", dateKey, time.Local)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
}

// Friday; the user reported an 08:00 start, so the budget projects from
// there. Task one has a 60 minute budget: finishing at 09:10 is 10 minutes
// past its projected slot, inside the warning threshold.
func TestDeltaClassifierOkWithinWarning(t *testing.T) {
	const friday = "2025-03-07"
	input := DeltaInput{
		Users:     []Models.User{makeUser(1, "Amira")},
		Templates: []Models.TaskTemplate{makeTemplate(1, "Open shop", []string{"fri"}, 1, intPtr(60))},
		Reports: []Models.ShiftReport{
			{UserID: 1, ReportDate: friday, StartTime: "08:00"},
		},
		Completions: []Models.CompletionItem{
			{UserID: 1, ReportDate: friday, TaskID: "1", CompletedAt: at(friday, 9, 10), CompletedBy: "Amira"},
		},
		DateKeys:       []string{friday},
		CurrentDateKey: "2025-03-08",
	}

	rows := ComputeDeltaRows(input)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, at(friday, 9, 0), row.ExpectedAt)
	require.NotNil(t, row.DeltaMinutes)
	assert.Equal(t, 10, *row.DeltaMinutes)
	assert.Equal(t, SeverityOK, row.AutoSeverity)
	assert.False(t, row.AutoAlarming)
	assert.Equal(t, SeverityOK, row.FinalSeverity)
}

// Second task's slot accumulates the first task's budget: 60 + 30 minutes
// from the 08:00 anchor puts its expected instant at 09:30, so 10:40 is 70
// minutes late and critical.
func TestDeltaClassifierCumulativeBudgetCritical(t *testing.T) {
	const friday = "2025-03-07"
	input := DeltaInput{
		Users: []Models.User{makeUser(1, "Amira")},
		Templates: []Models.TaskTemplate{
			makeTemplate(1, "Open shop", []string{"fri"}, 1, intPtr(60)),
			makeTemplate(2, "Stock shelves", []string{"fri"}, 2, intPtr(30)),
		},
		Reports: []Models.ShiftReport{
			{UserID: 1, ReportDate: friday, StartTime: "08:00"},
		},
		Completions: []Models.CompletionItem{
			{UserID: 1, ReportDate: friday, TaskID: "1", CompletedAt: at(friday, 9, 10)},
			{UserID: 1, ReportDate: friday, TaskID: "2", CompletedAt: at(friday, 10, 40)},
		},
		DateKeys:       []string{friday},
		CurrentDateKey: "2025-03-08",
	}

	rows := ComputeDeltaRows(input)
	require.Len(t, rows, 2)

	second := rows[1]
	assert.Equal(t, at(friday, 9, 30), second.ExpectedAt)
	require.NotNil(t, second.DeltaMinutes)
	assert.Equal(t, 70, *second.DeltaMinutes)
	assert.Equal(t, SeverityCritical, second.AutoSeverity)
	assert.True(t, second.AutoAlarming)

	// Gap between the two completions: 09:10 to 10:40
	require.NotNil(t, second.GapSincePreviousMinutes)
	assert.Equal(t, 90, *second.GapSincePreviousMinutes)
	assert.Nil(t, rows[0].GapSincePreviousMinutes, "first completion has no predecessor")
}

func TestDeltaClassifierWarningBand(t *testing.T) {
	const friday = "2025-03-07"
	input := DeltaInput{
		Users:     []Models.User{makeUser(1, "Amira")},
		Templates: []Models.TaskTemplate{makeTemplate(1, "Open shop", []string{"fri"}, 1, intPtr(60))},
		Reports:   []Models.ShiftReport{{UserID: 1, ReportDate: friday, StartTime: "08:00"}},
		Completions: []Models.CompletionItem{
			// 30 minutes past the expected 09:00 slot
			{UserID: 1, ReportDate: friday, TaskID: "1", CompletedAt: at(friday, 9, 30)},
		},
		DateKeys:       []string{friday},
		CurrentDateKey: "2025-03-08",
	}

	rows := ComputeDeltaRows(input)
	require.Len(t, rows, 1)
	assert.Equal(t, SeverityWarning, rows[0].AutoSeverity)
	assert.True(t, rows[0].AutoAlarming)
}

// Without a report the classifier projects from its own 09:00 default,
// not the daily path's 08:00.
func TestDeltaClassifierDefaultAnchor(t *testing.T) {
	const friday = "2025-03-07"
	input := DeltaInput{
		Users:          []Models.User{makeUser(1, "Amira")},
		Templates:      []Models.TaskTemplate{makeTemplate(1, "Open shop", []string{"fri"}, 1, intPtr(60))},
		DateKeys:       []string{friday},
		CurrentDateKey: friday,
	}

	rows := ComputeDeltaRows(input)
	require.Len(t, rows, 1)
	assert.Equal(t, at(friday, 10, 0), rows[0].ExpectedAt)
}

func TestDeltaClassifierMissingVersusPending(t *testing.T) {
	input := DeltaInput{
		Users: []Models.User{makeUser(1, "Amira")},
		Templates: []Models.TaskTemplate{
			makeTemplate(1, "Open shop", []string{"thu", "fri"}, 1, intPtr(30)),
		},
		DateKeys:       []string{"2025-03-06", "2025-03-07"},
		CurrentDateKey: "2025-03-07",
	}

	rows := ComputeDeltaRows(input)
	require.Len(t, rows, 2)

	past := rows[0]
	assert.Equal(t, SeverityMissing, past.AutoSeverity)
	assert.True(t, past.AutoAlarming)
	assert.Nil(t, past.CompletedAt)
	assert.Nil(t, past.DeltaMinutes)

	today := rows[1]
	assert.Equal(t, SeverityPending, today.AutoSeverity)
	assert.False(t, today.AutoAlarming)
}

func TestDeltaClassifierSkipsRemovedTasks(t *testing.T) {
	const friday = "2025-03-07"
	input := DeltaInput{
		Users: []Models.User{makeUser(1, "Amira")},
		Templates: []Models.TaskTemplate{
			makeTemplate(1, "Open shop", []string{"fri"}, 1, intPtr(30)),
			makeTemplate(2, "Stock shelves", []string{"fri"}, 2, intPtr(30)),
		},
		Removals: BuildRemovalSet([]Models.TaskRemoval{
			{UserID: 1, ReportDate: friday, TaskID: "1", IsRemoved: true},
		}),
		DateKeys:       []string{friday},
		CurrentDateKey: "2025-03-08",
	}

	rows := ComputeDeltaRows(input)
	require.Len(t, rows, 1, "removed task must not surface, not even as missing")
	assert.Equal(t, "2", rows[0].TaskID)

	// The removed task's budget still shapes nothing: the remaining task's
	// slot starts at the anchor.
	assert.Equal(t, at(friday, 9, 30), rows[0].ExpectedAt)
}

func TestDeltaClassifierNilEstimateContributesZero(t *testing.T) {
	const friday = "2025-03-07"
	input := DeltaInput{
		Users: []Models.User{makeUser(1, "Amira")},
		Templates: []Models.TaskTemplate{
			makeTemplate(1, "Check mail", []string{"fri"}, 1, nil),
			makeTemplate(2, "Open shop", []string{"fri"}, 2, intPtr(45)),
		},
		Reports:        []Models.ShiftReport{{UserID: 1, ReportDate: friday, StartTime: "08:00"}},
		DateKeys:       []string{friday},
		CurrentDateKey: friday,
	}

	rows := ComputeDeltaRows(input)
	require.Len(t, rows, 2)
	assert.Equal(t, at(friday, 8, 0), rows[0].ExpectedAt, "no budget, expected at the anchor itself")
	assert.Equal(t, at(friday, 8, 45), rows[1].ExpectedAt)
}

func TestDeltaClassifierCustomThresholds(t *testing.T) {
	const friday = "2025-03-07"
	input := DeltaInput{
		Users:     []Models.User{makeUser(1, "Amira")},
		Templates: []Models.TaskTemplate{makeTemplate(1, "Open shop", []string{"fri"}, 1, intPtr(60))},
		Reports:   []Models.ShiftReport{{UserID: 1, ReportDate: friday, StartTime: "08:00"}},
		Completions: []Models.CompletionItem{
			{UserID: 1, ReportDate: friday, TaskID: "1", CompletedAt: at(friday, 9, 10)},
		},
		DateKeys:        []string{friday},
		CurrentDateKey:  "2025-03-08",
		WarningMinutes:  5,
		CriticalMinutes: 8,
	}

	rows := ComputeDeltaRows(input)
	require.Len(t, rows, 1)
	assert.Equal(t, SeverityCritical, rows[0].AutoSeverity, "+10 exceeds the tightened critical threshold")
}

func TestDeltaClassifierDeterministic(t *testing.T) {
	const friday = "2025-03-07"
	input := DeltaInput{
		Users: []Models.User{makeUser(1, "Amira"), makeUser(2, "Bilal")},
		Templates: []Models.TaskTemplate{
			makeTemplate(1, "Open shop", []string{"fri"}, 1, intPtr(60)),
			makeTemplate(2, "Stock shelves", []string{"fri"}, 2, intPtr(30)),
		},
		Reports: []Models.ShiftReport{{UserID: 1, ReportDate: friday, StartTime: "08:00"}},
		Completions: []Models.CompletionItem{
			{UserID: 1, ReportDate: friday, TaskID: "1", CompletedAt: at(friday, 9, 10)},
		},
		Overrides: []Models.AlertOverride{
			{UserID: 2, ReportDate: friday, TaskID: "1", IsAlarming: true, SetBy: "Dina"},
		},
		DateKeys:       []string{friday},
		CurrentDateKey: "2025-03-08",
	}

	first := ComputeDeltaRows(input)
	second := ComputeDeltaRows(input)
	assert.Equal(t, first, second, "identical inputs must produce identical rows")
}
