package Engine

import (
	"testing"

	"Sentinel/Models"

	"github.com/stretchr/testify/assert"
)

func TestBuildRemovalSetLastWriteWins(t *testing.T) {
	removals := []Models.TaskRemoval{
		{UserID: 1, ReportDate: "2025-03-07", TaskID: "5", IsRemoved: true},
		{UserID: 1, ReportDate: "2025-03-07", TaskID: "5", IsRemoved: false},
		{UserID: 1, ReportDate: "2025-03-07", TaskID: "6", IsRemoved: false},
		{UserID: 1, ReportDate: "2025-03-07", TaskID: "6", IsRemoved: true},
	}

	set := BuildRemovalSet(removals)
	assert.False(t, set.IsRemoved(1, "2025-03-07", "5"), "re-added task is not removed")
	assert.True(t, set.IsRemoved(1, "2025-03-07", "6"), "latest record removes the task")
}

func TestRemovalSetScopedByUserAndDate(t *testing.T) {
	set := BuildRemovalSet([]Models.TaskRemoval{
		{UserID: 1, ReportDate: "2025-03-07", TaskID: "5", IsRemoved: true},
	})

	assert.True(t, set.IsRemoved(1, "2025-03-07", "5"))
	assert.False(t, set.IsRemoved(2, "2025-03-07", "5"))
	assert.False(t, set.IsRemoved(1, "2025-03-08", "5"))
}

func TestZeroRemovalSet(t *testing.T) {
	var set RemovalSet
	assert.False(t, set.IsRemoved(1, "2025-03-07", "5"))
}
