package Engine

import (
	"fmt"

	"Sentinel/Models"
)

const (
	ReportStatusComplete   = "complete"
	ReportStatusIncomplete = "incomplete"
	ReportStatusNoPlan     = "no_plan"
)

// ReportSummary is the completeness verdict for one submitted shift report.
type ReportSummary struct {
	ReportID   uint   `json:"report_id"`
	UserID     uint   `json:"user_id"`
	UserName   string `json:"user_name"`
	ReportDate string `json:"report_date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Did        string `json:"did"`
	Handover   string `json:"handover"`

	PlannedCount   int    `json:"planned_count"`
	CompletedCount int    `json:"completed_count"`
	Status         string `json:"status"`

	// CompletionLabel renders as "completed/planned", e.g. "2/3".
	CompletionLabel string `json:"completion_label"`
}

// HistoryInput bundles the collections the summarizer folds over. Removals
// here are the global ones, recorded under the manager pseudo-user.
type HistoryInput struct {
	Reports     []Models.ShiftReport
	Templates   []Models.TaskTemplate
	Completions []Models.CompletionItem
	CustomTasks []Models.CustomTask
	Removals    RemovalSet
	Users       []Models.User
}

// SummarizeReports computes planned-vs-completed counts for every submitted
// report: the day's applicable template tasks (minus global removals) plus
// that date's active ad-hoc tasks, against completions by the reporting
// user. A day with nothing planned is "no_plan" rather than trivially
// complete.
func SummarizeReports(input HistoryInput) []ReportSummary {
	completions := indexCompletions(input.Completions)

	names := make(map[uint]string, len(input.Users))
	for _, user := range input.Users {
		names[user.ID] = user.Name
	}

	customByDate := make(map[string][]Models.CustomTask)
	for _, custom := range input.CustomTasks {
		if custom.IsActive {
			customByDate[custom.ReportDate] = append(customByDate[custom.ReportDate], custom)
		}
	}

	summaries := make([]ReportSummary, 0, len(input.Reports))
	for _, report := range input.Reports {
		summary := ReportSummary{
			ReportID:   report.ID,
			UserID:     report.UserID,
			UserName:   names[report.UserID],
			ReportDate: report.ReportDate,
			StartTime:  report.StartTime,
			EndTime:    report.EndTime,
			Did:        report.Did,
			Handover:   report.Handover,
		}

		var planned []string
		for _, template := range ResolveSchedule(input.Templates, report.ReportDate) {
			taskID := TemplateTaskID(template.ID)
			if input.Removals.IsRemoved(ManagerUserID, report.ReportDate, taskID) {
				continue
			}
			planned = append(planned, taskID)
		}
		for _, custom := range customByDate[report.ReportDate] {
			planned = append(planned, CustomTaskID(custom.PublicID))
		}

		summary.PlannedCount = len(planned)
		for _, taskID := range planned {
			if _, ok := completions[completionKey(report.UserID, report.ReportDate, taskID)]; ok {
				summary.CompletedCount++
			}
		}

		switch {
		case summary.PlannedCount == 0:
			summary.Status = ReportStatusNoPlan
		case summary.CompletedCount >= summary.PlannedCount:
			summary.Status = ReportStatusComplete
		default:
			summary.Status = ReportStatusIncomplete
		}
		summary.CompletionLabel = fmt.Sprintf("%d/%d", summary.CompletedCount, summary.PlannedCount)

		summaries = append(summaries, summary)
	}
	return summaries
}
