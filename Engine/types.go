package Engine

import (
	"fmt"
	"time"

	"Sentinel/Models"
)

// Severity classifies how far a task's completion deviated from its
// projected slot.
type Severity string

const (
	SeverityOK       Severity = "ok"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
	SeverityMissing  Severity = "missing"
	SeverityPending  Severity = "pending"
)

const (
	DefaultWarningMinutes  = 15
	DefaultCriticalMinutes = 45
)

// ManagerUserID is the pseudo-user under which removals that apply to every
// staff member are recorded.
const ManagerUserID uint = 0

// CustomTaskPrefix marks task ids synthesized from ad-hoc tasks.
const CustomTaskPrefix = "custom:"

// TemplateTaskID renders a template's database id as the string task id used
// across completions, overrides and removals.
func TemplateTaskID(id uint) string {
	return fmt.Sprintf("%d", id)
}

// CustomTaskID synthesizes the task id for an ad-hoc task.
func CustomTaskID(publicID string) string {
	return CustomTaskPrefix + publicID
}

// TaskDeltaRow is the canonical output unit of the classifier: one row per
// scheduled occurrence, carrying both the automatic judgment and the final
// (post-override) one. The automatic fields are never rewritten.
type TaskDeltaRow struct {
	UserID           uint   `json:"user_id"`
	UserName         string `json:"user_name"`
	ReportDate       string `json:"report_date"`
	TaskID           string `json:"task_id"`
	TaskTitle        string `json:"task_title"`
	SortOrder        int    `json:"sort_order"`
	EstimatedMinutes int    `json:"estimated_minutes"`

	ExpectedAt              time.Time  `json:"expected_at"`
	CompletedAt             *time.Time `json:"completed_at"`
	CompletedBy             string     `json:"completed_by"`
	DeltaMinutes            *int       `json:"delta_minutes"`
	GapSincePreviousMinutes *int       `json:"gap_since_previous_minutes"`

	AutoSeverity Severity `json:"auto_severity"`
	AutoAlarming bool     `json:"auto_alarming"`

	FinalSeverity Severity `json:"final_severity"`
	FinalAlarming bool     `json:"final_alarming"`

	HasOverride    bool       `json:"has_override"`
	OverrideReason string     `json:"override_reason,omitempty"`
	OverrideSetBy  string     `json:"override_set_by,omitempty"`
	OverrideSetAt  *time.Time `json:"override_set_at,omitempty"`
}

// DeltaInput bundles the already-fetched collections one classification run
// folds over. The engine never mutates any of them.
type DeltaInput struct {
	Users       []Models.User
	Templates   []Models.TaskTemplate
	Completions []Models.CompletionItem
	Reports     []Models.ShiftReport
	Overrides   []Models.AlertOverride
	Removals    RemovalSet

	// DateKeys is the requested window, "2006-01-02" each.
	DateKeys []string

	// CurrentDateKey is the boundary between "missing" and "pending".
	CurrentDateKey string

	// Zero values fall back to the 15/45 defaults.
	WarningMinutes  int
	CriticalMinutes int
}

func completionKey(userID uint, dateKey, taskID string) string {
	return fmt.Sprintf("%d|%s|%s", userID, dateKey, taskID)
}

func indexCompletions(items []Models.CompletionItem) map[string]Models.CompletionItem {
	index := make(map[string]Models.CompletionItem, len(items))
	for _, item := range items {
		index[completionKey(item.UserID, item.ReportDate, item.TaskID)] = item
	}
	return index
}

func indexReports(reports []Models.ShiftReport) map[string]Models.ShiftReport {
	index := make(map[string]Models.ShiftReport, len(reports))
	for _, report := range reports {
		index[fmt.Sprintf("%d|%s", report.UserID, report.ReportDate)] = report
	}
	return index
}
