package Engine

import (
	"time"
)

// IsSlow reports whether a completed task ran past its own minute budget
// measured from the day's anchor. No budget means no way to be slow. This is
// deliberately coarser than the delta classifier: it ignores the cumulative
// slot and powers the plain "ran long" badge.
func IsSlow(completedAt, anchor time.Time, estimatedMinutes *int) bool {
	if estimatedMinutes == nil || *estimatedMinutes <= 0 {
		return false
	}
	elapsed := completedAt.Sub(anchor).Minutes()
	return elapsed > float64(*estimatedMinutes)
}
