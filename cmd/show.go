package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/storage"
	"github.com/timetrack-cli/timetrack/internal/timecalc"
	"github.com/timetrack-cli/timetrack/internal/timeparse"
)

var showCmd = &cobra.Command{
	Use:   "show [start] [stop]",
	Short: "Show work time for the given timespan",
	Long: `Show the total work time covered by start/stop pairs in a window.

Both bounds are optional and accept a date ("YYYY-MM-DD") or an exact
date-time ("YYYY-MM-DD HH:MM:SS"). Without a stop, a date start covers
that whole day. Pass "all" as the stop to remove the upper bound.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	now := time.Now()

	var start, stop *timeparse.DateOrDateTime
	unbounded := false
	if len(args) >= 1 {
		v := timeparse.DateOrTime(args[0], now)
		start = &v
	}
	if len(args) >= 2 {
		if args[1] == "all" {
			unbounded = true
		} else {
			v := timeparse.DateOrTime(args[1], now)
			stop = &v
		}
	}
	if !unbounded && stop == nil {
		stop = defaultStop(start)
	}

	events := storage.Load(dataPath)
	total, err := timecalc.Sum(events, start, stop, now)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Work Time: %s\n", timecalc.FormatDurationHHMMSS(int64(total/time.Second)))

	if err := storage.Save(dataPath, events); err != nil {
		log.Fatal(err)
	}
	return nil
}

// defaultStop derives the upper bound when none was given: an exact
// date-time start is bounded by the end of its own day, while a date
// start (or no start) simply mirrors itself. The asymmetry is deliberate
// and matches the documented command behaviour.
func defaultStop(start *timeparse.DateOrDateTime) *timeparse.DateOrDateTime {
	if start == nil {
		return nil
	}
	if !start.DateOnly {
		d := start.DateOf()
		return &d
	}
	return start
}
