package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	idStrategy string

	logLevel = new(slog.LevelVar)
)

// rootCmd runs the interactive note pad when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "A single-screen note pad for the terminal",
	Long: `Scribe keeps an in-memory list of notes and lets you create, edit and
delete them from one screen. Nothing is written to disk.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logLevel.Set(slog.LevelDebug)
		}

		// loadConfig may lower or raise the level later from log_level.
		opts := &slog.HandlerOptions{
			Level: logLevel,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInteractive(cmd.Context()); err != nil {
			fatal("Error running scribe", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: scribe.yaml found upwards from the working directory)")
	rootCmd.PersistentFlags().StringVar(&idStrategy, "ids", "", "Note ID strategy: monotonic or timestamp (overrides the config file)")
}
