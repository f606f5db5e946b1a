package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/storage"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the path to the data file",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func runPath(cmd *cobra.Command, args []string) error {
	fmt.Println(dataPath)

	events := storage.Load(dataPath)
	if err := storage.Save(dataPath, events); err != nil {
		log.Fatal(err)
	}
	return nil
}
