package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		days        int
		unspecified bool
	}{
		{name: "same day counts as one", start: "2024-12-22", end: "2024-12-22", days: 1},
		{name: "two day rental", start: "2024-12-22", end: "2024-12-24", days: 2},
		{name: "week long", start: "2025-01-01", end: "2025-01-08", days: 7},
		{name: "reversed range clamps to one", start: "2024-12-24", end: "2024-12-22", days: 1},
		{name: "missing end", start: "2024-12-22", end: "", unspecified: true},
		{name: "missing start", start: "", end: "2024-12-24", unspecified: true},
		{name: "both missing", start: "", end: "", unspecified: true},
		{name: "garbage input", start: "next tuesday", end: "2024-12-24", unspecified: true},
		{name: "timestamps accepted", start: "2024-12-22T10:00:00Z", end: "2024-12-24T08:00:00Z", days: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDuration(tt.start, tt.end)
			assert.Equal(t, tt.unspecified, d.Unspecified)
			if !tt.unspecified {
				assert.Equal(t, tt.days, d.Days)
			}
		})
	}
}

func TestDurationDisplay(t *testing.T) {
	assert.Equal(t, "Not specified", Duration{Unspecified: true}.Display())
	assert.Equal(t, "1 day", Duration{Days: 1}.Display())
	assert.Equal(t, "3 days", Duration{Days: 3}.Display())
}
