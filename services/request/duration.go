package request

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Duration is the derived rental/session length. It is computed on
// demand and never stored; Unspecified means one of the bounds was
// absent or unparseable and the UI should fall back to a placeholder.
type Duration struct {
	Days        int  `json:"days,omitempty"`
	Unspecified bool `json:"unspecified,omitempty"`
}

// ComputeDuration derives the day count from two ISO date strings.
// Time of day is ignored. Same-day pickup and return counts as one
// day, never zero, and a reversed range clamps to the one-day floor.
func ComputeDuration(startDate, endDate string) Duration {
	start, err := parseDate(startDate)
	if err != nil {
		return Duration{Unspecified: true}
	}
	end, err := parseDate(endDate)
	if err != nil {
		return Duration{Unspecified: true}
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return Duration{Days: days}
}

// parseDate reads the calendar-date portion of an ISO string, so full
// timestamps like "2024-12-22T10:00:00Z" are accepted too.
func parseDate(value string) (time.Time, error) {
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	return time.Parse(dateLayout, value)
}

// Display renders the duration for review screens.
func (d Duration) Display() string {
	if d.Unspecified {
		return "Not specified"
	}
	if d.Days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", d.Days)
}
