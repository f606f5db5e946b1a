package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timetrack-cli/timetrack/internal/config"
	"github.com/timetrack-cli/timetrack/internal/storage"
)

// dataPath is the resolved event log location, computed once before any
// command runs and threaded into every load/save.
var dataPath string

var rootCmd = &cobra.Command{
	Use:   "tt",
	Short: "tt – a personal start/stop time tracker",
	Long: `tt is a single-binary, file-based command-line time tracker.
It records start and stop events with timestamps and optional
descriptions in a single data file, and computes elapsed working
time over a date range.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup loads the configuration, applies the log level and resolves the
// data file path.
func setup(cmd *cobra.Command, args []string) error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log_level %q in config: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	if cfg.DataFile != "" {
		dataPath = cfg.DataFile
		return nil
	}
	dataPath, err = storage.DefaultPath()
	return err
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(continueCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
}
