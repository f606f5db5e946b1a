package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/storage"
	"github.com/timetrack-cli/timetrack/internal/timeparse"
)

var startAt string

var startCmd = &cobra.Command{
	Use:   "start [description]",
	Short: "Start time tracking",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startAt, "at", "a", "",
		`Time of the event: "HH:MM:SS" or "YYYY-MM-DD HH:MM:SS" (default: now)`)
}

func runStart(cmd *cobra.Command, args []string) error {
	now := time.Now()

	at := now
	if startAt != "" {
		parsed, err := timeparse.DateTime(startAt, now)
		if err != nil {
			log.Fatal(err)
		}
		at = parsed
	}

	var description *string
	if len(args) == 1 {
		description = &args[0]
	}

	events := storage.Load(dataPath)
	if events.Start(description, at) {
		fmt.Printf("Started tracking at %s\n", at.Local().Format("15:04:05"))
	}

	if err := storage.Save(dataPath, events); err != nil {
		log.Fatal(err)
	}
	return nil
}
