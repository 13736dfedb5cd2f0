package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRun(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	s := NewExpiryScheduler(nil, loc, 23, 59, nil)

	tests := []struct {
		name  string
		after time.Time
		want  time.Time
	}{
		{
			name:  "later the same day",
			after: time.Date(2026, 6, 1, 8, 0, 0, 0, loc),
			want:  time.Date(2026, 6, 1, 23, 59, 0, 0, loc),
		},
		{
			name:  "exactly at the slot moves to the next day",
			after: time.Date(2026, 6, 1, 23, 59, 0, 0, loc),
			want:  time.Date(2026, 6, 2, 23, 59, 0, 0, loc),
		},
		{
			name:  "input in another zone",
			after: time.Date(2026, 6, 2, 2, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 6, 1, 23, 59, 0, 0, loc),
		},
		{
			name:  "across daylight saving change",
			after: time.Date(2026, 3, 8, 0, 30, 0, 0, loc),
			want:  time.Date(2026, 3, 8, 23, 59, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.NextRun(tt.after)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
