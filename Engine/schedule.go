package Engine

import (
	"sort"
	"time"

	"Sentinel/Models"
)

var weekdayCodes = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

// WeekdayCode returns the schedule code ("mon".."sun") for a date key.
// Callers must pass a well-formed "2006-01-02" key; an unparseable key maps
// to an empty code, which matches no schedule.
func WeekdayCode(dateKey string) string {
	t, err := time.ParseInLocation("2006-01-02", dateKey, time.Local)
	if err != nil {
		return ""
	}
	return weekdayCodes[t.Weekday()]
}

// ResolveSchedule returns the templates scheduled on the date's weekday,
// ordered by sort order with ties broken by id so the walk is deterministic.
func ResolveSchedule(templates []Models.TaskTemplate, dateKey string) []Models.TaskTemplate {
	code := WeekdayCode(dateKey)
	scheduled := make([]Models.TaskTemplate, 0, len(templates))
	for _, template := range templates {
		for _, day := range template.ScheduleDays {
			if day == code {
				scheduled = append(scheduled, template)
				break
			}
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		if scheduled[i].SortOrder != scheduled[j].SortOrder {
			return scheduled[i].SortOrder < scheduled[j].SortOrder
		}
		return scheduled[i].ID < scheduled[j].ID
	})
	return scheduled
}
