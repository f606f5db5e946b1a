package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/model"
	"github.com/timetrack-cli/timetrack/internal/storage"
	"github.com/timetrack-cli/timetrack/internal/timecalc"
	"github.com/timetrack-cli/timetrack/internal/timeparse"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether time tracking is running",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()

	events := storage.Load(dataPath)
	last := events.Last()
	switch {
	case last == nil:
		fmt.Println("No entries yet.")
	case last.IsStart():
		elapsed := int64(now.Sub(last.Time).Seconds())
		fmt.Println("Running:")
		if last.Description != nil {
			fmt.Printf("  Description: %s\n", *last.Description)
		}
		fmt.Printf("  Since: %s\n", last.Time.Local().Format("15:04"))
		fmt.Printf("  Elapsed: %s\n", timecalc.FormatDurationHHMMSS(elapsed))
	default:
		fmt.Println("Not running.")
		fmt.Printf("  Last stop: %s\n", last.Time.Local().Format("2006-01-02 15:04"))
		total, err := todayTotal(events, now)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  Today: %s logged.\n", timecalc.FormatDuration(int64(total/time.Second)))
	}

	if err := storage.Save(dataPath, events); err != nil {
		log.Fatal(err)
	}
	return nil
}

// todayTotal sums the sessions of the current local day for the idle
// status report.
func todayTotal(events model.Log, now time.Time) (time.Duration, error) {
	today := timeparse.DateOrDateTime{Time: timecalc.StartOfDay(now), DateOnly: true}
	return timecalc.Sum(events, &today, &today, now)
}
