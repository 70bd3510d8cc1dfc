package Engine

import (
	"fmt"
	"time"

	"Sentinel/Models"
)

// DailyTaskStatus is the per-task line of the daily agenda.
type DailyTaskStatus struct {
	TaskID               string     `json:"task_id"`
	Title                string     `json:"title"`
	SortOrder            int        `json:"sort_order"`
	EstimatedMinutes     *int       `json:"estimated_minutes"`
	IsCustom             bool       `json:"is_custom"`
	IsCompleted          bool       `json:"is_completed"`
	CompletedAt          *time.Time `json:"completed_at"`
	CompletedBy          string     `json:"completed_by"`
	IsSlow               bool       `json:"is_slow"`
	RequiresQualityCheck bool       `json:"requires_quality_check"`
}

// DailyUserSummary is one user's agenda for a single date.
type DailyUserSummary struct {
	UserID          uint              `json:"user_id"`
	UserName        string            `json:"user_name"`
	Tasks           []DailyTaskStatus `json:"tasks"`
	Total           int               `json:"total"`
	Completed       int               `json:"completed"`
	LastCompletedAt *time.Time        `json:"last_completed_at"`
}

// DailyInput bundles the collections for a single date key.
type DailyInput struct {
	DateKey     string
	Users       []Models.User
	Templates   []Models.TaskTemplate
	Completions []Models.CompletionItem
	Reports     []Models.ShiftReport
	CustomTasks []Models.CustomTask
	Removals    RemovalSet
	Quality     QualitySet
}

// ComputeDailySummary builds the agenda view for every user: the applicable
// template tasks (scheduled minus removed) plus the date's active ad-hoc
// tasks, each with completion state, the ran-long badge and the quality
// verification flag. The quality flag is informational only; it never feeds
// severity.
func ComputeDailySummary(input DailyInput) map[uint]DailyUserSummary {
	completions := indexCompletions(input.Completions)
	reports := indexReports(input.Reports)
	scheduled := ResolveSchedule(input.Templates, input.DateKey)

	summaries := make(map[uint]DailyUserSummary, len(input.Users))
	for _, user := range input.Users {
		report, hasReport := reports[fmt.Sprintf("%d|%s", user.ID, input.DateKey)]
		startTime := ""
		if hasReport {
			startTime = report.StartTime
		}
		anchor := AnchorTime(input.DateKey, startTime, DailyAnchorFallback)

		summary := DailyUserSummary{UserID: user.ID, UserName: user.Name}

		appendStatus := func(status DailyTaskStatus) {
			completion, completed := completions[completionKey(user.ID, input.DateKey, status.TaskID)]
			if completed {
				completedAt := completion.CompletedAt
				status.IsCompleted = true
				status.CompletedAt = &completedAt
				status.CompletedBy = completion.CompletedBy
				status.IsSlow = IsSlow(completedAt, anchor, status.EstimatedMinutes)
				summary.Completed++
				if summary.LastCompletedAt == nil || completedAt.After(*summary.LastCompletedAt) {
					summary.LastCompletedAt = &completedAt
				}
			}
			summary.Tasks = append(summary.Tasks, status)
			summary.Total++
		}

		for _, template := range scheduled {
			taskID := TemplateTaskID(template.ID)
			if input.Removals.IsRemoved(user.ID, input.DateKey, taskID) {
				continue
			}
			appendStatus(DailyTaskStatus{
				TaskID:               taskID,
				Title:                template.Title,
				SortOrder:            template.SortOrder,
				EstimatedMinutes:     template.EstimatedMinutes,
				RequiresQualityCheck: input.Quality.Contains(template.Title),
			})
		}

		for _, custom := range input.CustomTasks {
			if !custom.IsActive || custom.ReportDate != input.DateKey {
				continue
			}
			appendStatus(DailyTaskStatus{
				TaskID:               CustomTaskID(custom.PublicID),
				Title:                custom.Title,
				EstimatedMinutes:     custom.EstimatedMinutes,
				IsCustom:             true,
				RequiresQualityCheck: input.Quality.Contains(custom.Title),
			})
		}

		summaries[user.ID] = summary
	}
	return summaries
}
