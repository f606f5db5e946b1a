package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	events := storage.Load(dataPath)
	for _, e := range events {
		fmt.Println(e)
	}

	if err := storage.Save(dataPath, events); err != nil {
		log.Fatal(err)
	}
	return nil
}
