package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/storage"
	"github.com/timetrack-cli/timetrack/internal/timeparse"
)

var stopAt string

var stopCmd = &cobra.Command{
	Use:   "stop [description]",
	Short: "Stop time tracking",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStop,
}

func init() {
	stopCmd.Flags().StringVarP(&stopAt, "at", "a", "",
		`Time of the event: "HH:MM:SS" or "YYYY-MM-DD HH:MM:SS" (default: now)`)
}

func runStop(cmd *cobra.Command, args []string) error {
	now := time.Now()

	at := now
	if stopAt != "" {
		parsed, err := timeparse.DateTime(stopAt, now)
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
	if events.Stop(description, at) {
		fmt.Printf("Stopped tracking at %s\n", at.Local().Format("15:04:05"))
	}

	if err := storage.Save(dataPath, events); err != nil {
		log.Fatal(err)
	}
	return nil
}
