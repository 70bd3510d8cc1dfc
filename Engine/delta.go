package Engine

import (
	"fmt"
	"math"
	"time"
)

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}

// ComputeDeltaRows runs the classifier for every user and every date in the
// window. For each applicable scheduled task it projects an expected
// completion instant by accumulating estimated minutes from the day's
// anchor, compares actual completion against it and assigns the automatic
// severity. Overrides from the input are merged afterwards, so every row
// leaves here with both judgments filled in.
//
// Rows are ordered by user, then date, then sort order. Every scheduled,
// non-removed task produces a row, completed or not.
func ComputeDeltaRows(input DeltaInput) []TaskDeltaRow {
	warning := input.WarningMinutes
	if warning <= 0 {
		warning = DefaultWarningMinutes
	}
	critical := input.CriticalMinutes
	if critical <= 0 {
		critical = DefaultCriticalMinutes
	}

	completions := indexCompletions(input.Completions)
	reports := indexReports(input.Reports)

	rows := make([]TaskDeltaRow, 0, len(input.Users)*len(input.DateKeys))
	for _, user := range input.Users {
		for _, dateKey := range input.DateKeys {
			report, hasReport := reports[fmt.Sprintf("%d|%s", user.ID, dateKey)]
			startTime := ""
			if hasReport {
				startTime = report.StartTime
			}
			anchor := AnchorTime(dateKey, startTime, DeltaAnchorFallback)

			runningTotal := 0
			var previousCompletedAt *time.Time

			for _, template := range ResolveSchedule(input.Templates, dateKey) {
				taskID := TemplateTaskID(template.ID)
				if input.Removals.IsRemoved(user.ID, dateKey, taskID) {
					continue
				}

				estimate := 0
				if template.EstimatedMinutes != nil {
					estimate = *template.EstimatedMinutes
				}
				// The projected instant means "done by the time this task's
				// allotted budget has elapsed", so the running total takes
				// this task's own estimate before the comparison.
				runningTotal += estimate
				expectedAt := anchor.Add(time.Duration(runningTotal) * time.Minute)

				row := TaskDeltaRow{
					UserID:           user.ID,
					UserName:         user.Name,
					ReportDate:       dateKey,
					TaskID:           taskID,
					TaskTitle:        template.Title,
					SortOrder:        template.SortOrder,
					EstimatedMinutes: estimate,
					ExpectedAt:       expectedAt,
				}

				completion, completed := completions[completionKey(user.ID, dateKey, taskID)]
				if completed {
					completedAt := completion.CompletedAt
					row.CompletedAt = &completedAt
					row.CompletedBy = completion.CompletedBy

					delta := roundMinutes(completedAt.Sub(expectedAt))
					row.DeltaMinutes = &delta

					if previousCompletedAt != nil {
						gap := roundMinutes(completedAt.Sub(*previousCompletedAt))
						row.GapSincePreviousMinutes = &gap
					}
					previousCompletedAt = &completedAt

					switch {
					case delta > critical:
						row.AutoSeverity = SeverityCritical
						row.AutoAlarming = true
					case delta > warning:
						row.AutoSeverity = SeverityWarning
						row.AutoAlarming = true
					default:
						row.AutoSeverity = SeverityOK
					}
				} else if dateKey < input.CurrentDateKey {
					row.AutoSeverity = SeverityMissing
					row.AutoAlarming = true
				} else {
					row.AutoSeverity = SeverityPending
				}

				row.FinalSeverity = row.AutoSeverity
				row.FinalAlarming = row.AutoAlarming
				rows = append(rows, row)
			}
		}
	}

	return ApplyOverrides(rows, input.Overrides)
}
