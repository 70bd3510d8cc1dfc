package Engine

import (
	"Sentinel/Models"
)

// RemovalSet is the resolved view of the task-removal overwrite log: a
// membership test over (user, date, task). Build it once per query window
// and treat it as immutable afterwards.
type RemovalSet struct {
	removed map[string]bool
}

// BuildRemovalSet folds removal records in the order given (callers fetch
// them in write order), so a later record for the same key wins.
func BuildRemovalSet(removals []Models.TaskRemoval) RemovalSet {
	set := RemovalSet{removed: make(map[string]bool, len(removals))}
	for _, removal := range removals {
		set.removed[completionKey(removal.UserID, removal.ReportDate, removal.TaskID)] = removal.IsRemoved
	}
	return set
}

// IsRemoved reports whether the task is suppressed for this user and day.
func (s RemovalSet) IsRemoved(userID uint, dateKey, taskID string) bool {
	if s.removed == nil {
		return false
	}
	return s.removed[completionKey(userID, dateKey, taskID)]
}
