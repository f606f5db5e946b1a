package cmd

import (
	"testing"
	"time"

	"github.com/timetrack-cli/timetrack/internal/model"
)

func TestTodayTotal(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	at := func(hour int) time.Time { return day.Add(time.Duration(hour) * time.Hour) }

	events := model.Log{
		// Yesterday's session must not count.
		model.NewStart(nil, day.AddDate(0, 0, -1).Add(8*time.Hour)),
		model.NewStop(nil, day.AddDate(0, 0, -1).Add(16*time.Hour)),
		model.NewStart(nil, at(8)),
		model.NewStop(nil, at(12)),
		model.NewStart(nil, at(13)),
		model.NewStop(nil, at(14)),
	}

	total, err := todayTotal(events, at(18))
	if err != nil {
		t.Fatalf("todayTotal: %v", err)
	}
	if total != 5*time.Hour {
		t.Errorf("todayTotal = %v, want %v", total, 5*time.Hour)
	}
}

func TestTodayTotalEmptyLog(t *testing.T) {
	total, err := todayTotal(nil, time.Now())
	if err != nil {
		t.Fatalf("todayTotal: %v", err)
	}
	if total != 0 {
		t.Errorf("todayTotal = %v, want 0", total)
	}
}
