package Engine

import (
	"fmt"
	"math"

	"Sentinel/Models"
)

// UserPerformance rolls one user's adherence up across a date window. The
// same shape carries the totals row, where every percentage is recomputed
// from the summed numerators and denominators rather than averaged.
type UserPerformance struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`

	ExpectedTasks  int `json:"expected_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	AdherencePct   int `json:"adherence_pct"`

	ExpectedReportDays int `json:"expected_report_days"`
	ReportDays         int `json:"report_days"`
	ReportCoveragePct  int `json:"report_coverage_pct"`

	QualityExpected    int `json:"quality_expected"`
	QualityCompleted   int `json:"quality_completed"`
	QualityCoveragePct int `json:"quality_coverage_pct"`

	SlowTasks int `json:"slow_tasks"`
}

// PerformanceResult is the window aggregate: one entry per user plus totals.
type PerformanceResult struct {
	Users  []UserPerformance `json:"users"`
	Totals UserPerformance   `json:"totals"`
}

// PerformanceInput bundles the collections for a window aggregation. Note
// there is no removal set here: this aggregator intentionally measures
// against the nominal template schedule.
type PerformanceInput struct {
	DateKeys    []string
	Users       []Models.User
	Templates   []Models.TaskTemplate
	Completions []Models.CompletionItem
	Reports     []Models.ShiftReport
	Quality     QualitySet
}

func pct(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) * 100 / float64(denominator)))
}

// ComputeWindowPerformance aggregates adherence, report coverage, quality
// coverage and slow-task counts across the window, per user and in total.
func ComputeWindowPerformance(input PerformanceInput) PerformanceResult {
	completions := indexCompletions(input.Completions)
	reports := indexReports(input.Reports)

	result := PerformanceResult{Users: make([]UserPerformance, 0, len(input.Users))}
	for _, user := range input.Users {
		perf := UserPerformance{UserID: user.ID, UserName: user.Name}

		for _, dateKey := range input.DateKeys {
			scheduled := ResolveSchedule(input.Templates, dateKey)
			if len(scheduled) == 0 {
				continue
			}

			// A day expects a report iff at least one task is scheduled.
			perf.ExpectedReportDays++
			report, hasReport := reports[fmt.Sprintf("%d|%s", user.ID, dateKey)]
			startTime := ""
			if hasReport {
				perf.ReportDays++
				startTime = report.StartTime
			}
			anchor := AnchorTime(dateKey, startTime, DailyAnchorFallback)

			for _, template := range scheduled {
				perf.ExpectedTasks++
				isQuality := input.Quality.Contains(template.Title)
				if isQuality {
					perf.QualityExpected++
				}

				completion, completed := completions[completionKey(user.ID, dateKey, TemplateTaskID(template.ID))]
				if !completed {
					continue
				}
				perf.CompletedTasks++
				if isQuality {
					perf.QualityCompleted++
				}
				if IsSlow(completion.CompletedAt, anchor, template.EstimatedMinutes) {
					perf.SlowTasks++
				}
			}
		}

		perf.AdherencePct = pct(perf.CompletedTasks, perf.ExpectedTasks)
		perf.ReportCoveragePct = pct(perf.ReportDays, perf.ExpectedReportDays)
		perf.QualityCoveragePct = pct(perf.QualityCompleted, perf.QualityExpected)
		result.Users = append(result.Users, perf)

		result.Totals.ExpectedTasks += perf.ExpectedTasks
		result.Totals.CompletedTasks += perf.CompletedTasks
		result.Totals.ExpectedReportDays += perf.ExpectedReportDays
		result.Totals.ReportDays += perf.ReportDays
		result.Totals.QualityExpected += perf.QualityExpected
		result.Totals.QualityCompleted += perf.QualityCompleted
		result.Totals.SlowTasks += perf.SlowTasks
	}

	result.Totals.AdherencePct = pct(result.Totals.CompletedTasks, result.Totals.ExpectedTasks)
	result.Totals.ReportCoveragePct = pct(result.Totals.ReportDays, result.Totals.ExpectedReportDays)
	result.Totals.QualityCoveragePct = pct(result.Totals.QualityCompleted, result.Totals.QualityExpected)
	return result
}
