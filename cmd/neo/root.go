package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/HatemSelim94/NEO/internal/database"
	"github.com/HatemSelim94/NEO/internal/extract"
)

var (
	neoFile  string
	cadFile  string
	logLevel string

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "neo",
	Short: "Explore near-Earth objects and their close approaches",
	Long: `neo links NASA's near-Earth object records to their recorded close
approaches and answers lookups by designation or name as well as filtered
queries over the close-approach set.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&neoFile, "neofile", "data/neos.csv", "path to the NEO CSV file")
	rootCmd.PersistentFlags().StringVar(&cadFile, "cadfile", "data/cad.json", "path to the close-approach JSON file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel(), "log level (debug, info, warn, error)")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(inspectCmd)
}

// defaultLogLevel reads NEO_LOG_LEVEL so the flag default can be set
// environment-wide.
func defaultLogLevel() string {
	if v := os.Getenv("NEO_LOG_LEVEL"); v != "" {
		return v
	}
	return "warn"
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	err := l.UnmarshalText([]byte(level))
	if err != nil {
		l = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	if err != nil {
		logger.Warn("invalid log level, using warn", "value", level)
	}
	return logger
}

// loadDatabase decodes both input files and links them into a Database.
func loadDatabase() (*database.Database, error) {
	neos, err := extract.LoadNEOs(neoFile, logger)
	if err != nil {
		return nil, fmt.Errorf("loading NEOs: %w", err)
	}
	approaches, err := extract.LoadApproaches(cadFile, logger)
	if err != nil {
		return nil, fmt.Errorf("loading close approaches: %w", err)
	}
	db, err := database.New(neos, approaches, logger)
	if err != nil {
		return nil, fmt.Errorf("linking data set: %w", err)
	}
	return db, nil
}
