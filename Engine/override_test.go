package Engine

import (
	"testing"
	"time"

	"Sentinel/Models"

	"github.com/stretchr/testify/assert"
)

func TestResolveOverrideNoOverride(t *testing.T) {
	row := TaskDeltaRow{AutoSeverity: SeverityCritical, AutoAlarming: true}
	resolved := ResolveOverride(row, nil)
	assert.Equal(t, SeverityCritical, resolved.FinalSeverity)
	assert.True(t, resolved.FinalAlarming)
	assert.False(t, resolved.HasOverride)
}

func TestResolveOverrideExcusesDeviation(t *testing.T) {
	setAt := time.Date(2025, 3, 7, 18, 0, 0, 0, time.Local)
	override := &Models.AlertOverride{
		IsAlarming: false,
		Reason:     "fridge delivery blocked the morning",
		SetBy:      "Dina",
		SetAt:      setAt,
	}

	for _, auto := range []Severity{SeverityWarning, SeverityCritical, SeverityMissing} {
		row := ResolveOverride(TaskDeltaRow{AutoSeverity: auto, AutoAlarming: true}, override)
		assert.Equal(t, SeverityOK, row.FinalSeverity, string(auto))
		assert.False(t, row.FinalAlarming)
		// The automatic judgment survives for audit
		assert.Equal(t, auto, row.AutoSeverity)
		assert.True(t, row.AutoAlarming)
		assert.Equal(t, "fridge delivery blocked the morning", row.OverrideReason)
		assert.Equal(t, "Dina", row.OverrideSetBy)
		assert.Equal(t, setAt, *row.OverrideSetAt)
	}
}

func TestResolveOverrideEscalatesQuietRows(t *testing.T) {
	override := &Models.AlertOverride{IsAlarming: true}

	for _, auto := range []Severity{SeverityOK, SeverityPending} {
		row := ResolveOverride(TaskDeltaRow{AutoSeverity: auto}, override)
		assert.Equal(t, SeverityWarning, row.FinalSeverity, string(auto))
		assert.True(t, row.FinalAlarming)
		assert.Equal(t, auto, row.AutoSeverity)
	}
}

func TestResolveOverrideKeepsAlarmingSeverity(t *testing.T) {
	override := &Models.AlertOverride{IsAlarming: true}

	for _, auto := range []Severity{SeverityWarning, SeverityCritical, SeverityMissing} {
		row := ResolveOverride(TaskDeltaRow{AutoSeverity: auto, AutoAlarming: true}, override)
		assert.Equal(t, auto, row.FinalSeverity, string(auto))
		assert.True(t, row.FinalAlarming)
	}
}

func TestApplyOverridesMatchesByKey(t *testing.T) {
	rows := []TaskDeltaRow{
		{UserID: 1, ReportDate: "2025-03-07", TaskID: "1", AutoSeverity: SeverityCritical, AutoAlarming: true},
		{UserID: 2, ReportDate: "2025-03-07", TaskID: "1", AutoSeverity: SeverityCritical, AutoAlarming: true},
	}
	overrides := []Models.AlertOverride{
		{UserID: 1, ReportDate: "2025-03-07", TaskID: "1", IsAlarming: false, Reason: "excused"},
	}

	resolved := ApplyOverrides(rows, overrides)
	assert.Equal(t, SeverityOK, resolved[0].FinalSeverity)
	assert.True(t, resolved[0].HasOverride)
	assert.Equal(t, SeverityCritical, resolved[1].FinalSeverity, "other user's row untouched")
	assert.False(t, resolved[1].HasOverride)
}
