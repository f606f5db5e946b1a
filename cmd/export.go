package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/model"
	"github.com/timetrack-cli/timetrack/internal/storage"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
}

func runExport(cmd *cobra.Command, args []string) error {
	events := storage.Load(dataPath)

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			log.Fatalf("error encoding JSON: %v", err)
		}
		fmt.Println(string(data))
	default: // csv
		printCSV(events)
	}

	if err := storage.Save(dataPath, events); err != nil {
		log.Fatal(err)
	}
	return nil
}

func printCSV(events model.Log) {
	fmt.Println("kind,description,time")
	for _, e := range events {
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		fmt.Printf("%s,%s,%s\n",
			csvEscape(string(e.Kind)),
			csvEscape(description),
			csvEscape(e.Time.Format(time.RFC3339)),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
