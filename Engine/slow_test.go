package Engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsSlow(t *testing.T) {
	anchor := time.Date(2025, 3, 7, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name             string
		completedAt      time.Time
		estimatedMinutes *int
		want             bool
	}{
		{"no budget means never slow", anchor.Add(5 * time.Hour), nil, false},
		{"zero budget means never slow", anchor.Add(5 * time.Hour), intPtr(0), false},
		{"inside budget", anchor.Add(25 * time.Minute), intPtr(30), false},
		{"exactly on budget is not slow", anchor.Add(30 * time.Minute), intPtr(30), false},
		{"over budget", anchor.Add(31 * time.Minute), intPtr(30), true},
		{"completed before anchor", anchor.Add(-10 * time.Minute), intPtr(30), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSlow(tt.completedAt, anchor, tt.estimatedMinutes))
		})
	}
}
