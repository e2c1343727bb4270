package service

import (
	"time"

	"home_security/internal/models"
)

const (
	layoutDate = "2006-01-02"

	dayStartSuffix = "T00:00:00Z"
	dayEndSuffix   = "T23:59:59Z"
)

// IntrusionDetails is the fixed message attached to each motion event.
const IntrusionDetails = "Motion detected"

// DayRange converts a YYYY-MM-DD calendar date into the feed service's
// half-open UTC range markers. The date is treated as already naming the
// desired UTC day; no timezone conversion is applied to it.
func DayRange(date string) (start, end string) {
	return date + dayStartSuffix, date + dayEndSuffix
}

// Today returns the current UTC calendar date in YYYY-MM-DD form. "Today"
// means the UTC day everywhere, so the rendered date always matches the
// Z-suffixed range markers regardless of the host timezone.
func Today() string {
	return time.Now().UTC().Format(layoutDate)
}

// defaultDate substitutes today's UTC date for an absent query date.
func defaultDate(date string) string {
	if date == "" {
		return Today()
	}
	return date
}

// FilterIntrusions scans a day's motion samples and emits one event per "1"
// reading, in chronological order. The upstream delivers reverse-chronological
// pages; all day-scoped outputs here use the same oldest-first convention.
func FilterIntrusions(samples []models.Sample) []models.IntrusionEvent {
	events := make([]models.IntrusionEvent, 0)
	for i := len(samples) - 1; i >= 0; i-- {
		if samples[i].Value == models.OnValue {
			events = append(events, models.IntrusionEvent{
				Timestamp: samples[i].CreatedAt,
				Details:   IntrusionDetails,
			})
		}
	}
	return events
}
