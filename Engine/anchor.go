package Engine

import (
	"time"
)

// The two legacy anchor defaults. The daily/performance paths assume an
// 08:00 shift start, the delta classifier a 09:00 one. Both are kept as-is;
// unifying them would silently shift every computed severity threshold.
const (
	DailyAnchorFallback = "08:00"
	DeltaAnchorFallback = "09:00"
)

var timeOfDayLayouts = []string{
	"15:04:05",
	"15:04",
}

func parseTimeOfDay(value string) (time.Time, bool) {
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AnchorTime builds the instant a day's task budget is projected from: the
// reported start time when it parses, the given fallback otherwise. A
// malformed start time (e.g. "99:99") is treated as absent, never an error.
func AnchorTime(dateKey, startTime, fallback string) time.Time {
	clock, ok := parseTimeOfDay(startTime)
	if !ok {
		clock, ok = parseTimeOfDay(fallback)
		if !ok {
			clock = time.Time{}
		}
	}
	day, err := time.ParseInLocation("2006-01-02", dateKey, time.Local)
	if err != nil {
		day = time.Time{}
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local)
}
