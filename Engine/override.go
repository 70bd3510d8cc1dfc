package Engine

import (
	"Sentinel/Models"
)

// ResolveOverride merges a manager's explicit alarm decision into a row. The
// automatic judgment is only shadowed, never rewritten:
//
//   - no override: final mirrors automatic.
//   - is_alarming=false: the manager excused the deviation, final is "ok".
//   - is_alarming=true on an "ok"/"pending" row: escalated to "warning" —
//     the manager flagged something the rules missed, without claiming it
//     matches an automatically detected critical breach.
//   - is_alarming=true on an already alarming row: severity unchanged.
func ResolveOverride(row TaskDeltaRow, override *Models.AlertOverride) TaskDeltaRow {
	row.FinalSeverity = row.AutoSeverity
	row.FinalAlarming = row.AutoAlarming
	if override == nil {
		return row
	}

	row.HasOverride = true
	row.OverrideReason = override.Reason
	row.OverrideSetBy = override.SetBy
	setAt := override.SetAt
	row.OverrideSetAt = &setAt

	if !override.IsAlarming {
		row.FinalSeverity = SeverityOK
		row.FinalAlarming = false
		return row
	}

	row.FinalAlarming = true
	if row.AutoSeverity == SeverityOK || row.AutoSeverity == SeverityPending {
		row.FinalSeverity = SeverityWarning
	}
	return row
}

// ApplyOverrides resolves every row against its matching override, if any.
func ApplyOverrides(rows []TaskDeltaRow, overrides []Models.AlertOverride) []TaskDeltaRow {
	index := make(map[string]Models.AlertOverride, len(overrides))
	for _, override := range overrides {
		index[completionKey(override.UserID, override.ReportDate, override.TaskID)] = override
	}
	for i := range rows {
		if override, ok := index[completionKey(rows[i].UserID, rows[i].ReportDate, rows[i].TaskID)]; ok {
			rows[i] = ResolveOverride(rows[i], &override)
		} else {
			rows[i] = ResolveOverride(rows[i], nil)
		}
	}
	return rows
}
