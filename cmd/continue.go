package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/storage"
)

var continueCmd = &cobra.Command{
	Use:   "continue",
	Short: "Start time tracking again with the last description",
	Args:  cobra.NoArgs,
	RunE:  runContinue,
}

func runContinue(cmd *cobra.Command, args []string) error {
	now := time.Now()

	events := storage.Load(dataPath)
	appended, empty := events.Continue(now)
	if empty {
		fmt.Fprintln(os.Stderr, "Time tracking couldn't be continued, because there are no entries. Use the start command instead!")
	}
	if appended {
		fmt.Printf("Continued tracking at %s\n", now.Format("15:04:05"))
	}

	if err := storage.Save(dataPath, events); err != nil {
		log.Fatal(err)
	}
	return nil
}
