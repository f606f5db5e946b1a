package timecalc

import (
	"errors"
	"fmt"
	"time"

	"github.com/timetrack-cli/timetrack/internal/model"
	"github.com/timetrack-cli/timetrack/internal/timeparse"
)

// ErrDurationOverflow is returned when the accumulated work time exceeds
// the representable duration range.
var ErrDurationOverflow = errors.New("total duration overflows")

// Sum computes the total elapsed work time of the events falling inside
// the optional [start, stop] window (each bound independently optional,
// both inclusive). A Date bound covers its whole local day; a DateTime
// bound is an exact instant.
//
// Leading Stop events inside the window are discarded: a window may begin
// mid-session on a dangling Stop that has no matching Start in range. The
// remainder is walked two at a time as (Start, Stop) pairs; a final
// unpaired Start counts as an open session up to now.
func Sum(events []model.Event, start, stop *timeparse.DateOrDateTime, now time.Time) (time.Duration, error) {
	filtered := filterWindow(events, start, stop)

	i := 0
	for i < len(filtered) && filtered[i].IsStop() {
		i++
	}

	var total time.Duration
	for ; i < len(filtered); i += 2 {
		first := filtered[i]
		if i+1 >= len(filtered) {
			// Open session: the window ends mid-session.
			if first.IsStart() {
				var err error
				total, err = checkedAdd(total, now.Sub(first.Time))
				if err != nil {
					return 0, err
				}
			}
			break
		}
		second := filtered[i+1]
		d, err := checkedAdd(total, second.Time.Sub(first.Time))
		if err != nil {
			return 0, err
		}
		total = d
	}
	return total, nil
}

func filterWindow(events []model.Event, start, stop *timeparse.DateOrDateTime) []model.Event {
	var lower, upper *time.Time
	if start != nil {
		t := start.Time // a Date bound already sits at local midnight
		lower = &t
	}
	if stop != nil {
		t := stop.Time
		if stop.DateOnly {
			t = EndOfDay(t)
		}
		upper = &t
	}

	var out []model.Event
	for _, e := range events {
		if lower != nil && e.Time.Before(*lower) {
			continue
		}
		if upper != nil && e.Time.After(*upper) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// checkedAdd adds two durations, failing on int64 overflow instead of
// wrapping around.
func checkedAdd(a, b time.Duration) (time.Duration, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrDurationOverflow
	}
	return sum, nil
}

// FormatDurationHHMMSS formats seconds as HH:MM:SS. Hours are not capped
// at 24; minutes and seconds are derived by subtracting the whole-hour
// and whole-minute components from the total.
func FormatDurationHHMMSS(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m"
// or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
