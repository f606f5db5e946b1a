// Package timeparse converts free-form user time strings into absolute
// instants, with layered permissive fallbacks.
package timeparse

import (
	"fmt"
	"time"
)

// Lenient layouts: each numeric component accepts one or two digits, so
// the ":0" suffix completions below parse the same way full "HH:MM:SS"
// input does. The zero-padded layout forms would reject them.
const (
	timeOfDayLayout = "15:4:5"
	dateLayout      = "2006-1-2"
	dateTimeLayout  = "2006-1-2 15:4:5"
)

// DateOrDateTime is a user-provided boundary: either a calendar date
// (whole-day granularity) or an exact date+time (second granularity).
// The instant is kept in local time; DateOnly marks the former variant,
// with Time set to local midnight of that day.
type DateOrDateTime struct {
	Time     time.Time
	DateOnly bool
}

// DateOf truncates to the calendar-date variant of the same local day.
func (d DateOrDateTime) DateOf() DateOrDateTime {
	y, m, day := d.Time.Date()
	return DateOrDateTime{
		Time:     time.Date(y, m, day, 0, 0, 0, 0, d.Time.Location()),
		DateOnly: true,
	}
}

// DateTime parses a time string into a UTC instant. Accepted shapes are a
// time of day ("HH:MM:SS", "HH:MM", "HH"), applied to the current local
// day, or a full date-time ("YYYY-MM-DD HH:MM:SS", "... HH:MM", "... HH").
// Shorter shapes are completed by appending ":0" / ":0:0" and re-parsing;
// the six attempts run in that fixed order and the first success wins.
// The attempt order matters: a later branch is only reached when every
// earlier one failed to parse, so it must not be reordered.
func DateTime(s string, now time.Time) (time.Time, error) {
	for _, candidate := range []string{s, s + ":0", s + ":0:0"} {
		if tod, err := time.Parse(timeOfDayLayout, candidate); err == nil {
			y, m, d := now.Date()
			local := time.Date(y, m, d,
				tod.Hour(), tod.Minute(), tod.Second(), 0, now.Location())
			return local.UTC(), nil
		}
	}
	for _, candidate := range []string{s, s + ":0", s + ":0:0"} {
		if dt, err := time.ParseInLocation(dateTimeLayout, candidate, now.Location()); err == nil {
			return dt.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q: expected \"HH:MM:SS\" or \"YYYY-MM-DD HH:MM:SS\"", s)
}

// DateOrTime parses a show-command boundary: first as a calendar date,
// then as a full date-time. Anything else silently falls back to today's
// date; this parser never fails.
func DateOrTime(s string, now time.Time) DateOrDateTime {
	if d, err := time.ParseInLocation(dateLayout, s, now.Location()); err == nil {
		return DateOrDateTime{Time: d, DateOnly: true}
	}
	if dt, err := time.ParseInLocation(dateTimeLayout, s, now.Location()); err == nil {
		return DateOrDateTime{Time: dt}
	}
	return DateOrDateTime{Time: now}.DateOf()
}
