package Engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnchorTimeUsesReportedStart(t *testing.T) {
	anchor := AnchorTime("2025-03-07", "07:30", DailyAnchorFallback)
	want := time.Date(2025, 3, 7, 7, 30, 0, 0, time.Local)
	assert.Equal(t, want, anchor)
}

func TestAnchorTimeWithSeconds(t *testing.T) {
	anchor := AnchorTime("2025-03-07", "07:30:45", DailyAnchorFallback)
	want := time.Date(2025, 3, 7, 7, 30, 45, 0, time.Local)
	assert.Equal(t, want, anchor)
}

func TestAnchorTimeFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		fallback  string
		wantHour  int
	}{
		{"empty start uses daily default", "", DailyAnchorFallback, 8},
		{"empty start uses delta default", "", DeltaAnchorFallback, 9},
		{"malformed clock falls back", "99:99", DailyAnchorFallback, 8},
		{"garbage falls back", "soon", DeltaAnchorFallback, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := AnchorTime("2025-03-07", tt.startTime, tt.fallback)
			assert.Equal(t, tt.wantHour, anchor.Hour())
			assert.Equal(t, 0, anchor.Minute())
		})
	}
}

func TestAnchorTimeNeverPanicsOnBadDate(t *testing.T) {
	assert.NotPanics(t, func() {
		AnchorTime("not-a-date", "08:00", DailyAnchorFallback)
	})
}
