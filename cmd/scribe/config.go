package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/internal/config"
)

var (
	configInit  bool
	configForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration as YAML.

With --init, write the built-in defaults to scribe.yaml in the working
directory (or to the --config path) instead.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if configInit {
			initConfig()
			return
		}

		cfg, path, err := loadConfig()
		if err != nil {
			fatal("Error loading config", err)
		}
		if idStrategy != "" {
			cfg.IDStrategy = idStrategy
			if err := cfg.Validate(); err != nil {
				fatal("Invalid --ids", err)
			}
		}

		data, err := cfg.Marshal()
		if err != nil {
			fatal("Error encoding config", err)
		}
		if path == "" {
			path = "built-in defaults"
		}
		fmt.Fprintf(os.Stderr, "# source: %s\n", path)
		fmt.Print(string(data))
	},
}

func initConfig() {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			fatal("Error getting working directory", err)
		}
		path = filepath.Join(wd, "scribe.yaml")
	}

	cfg := config.Default()
	if idStrategy != "" {
		cfg.IDStrategy = idStrategy
	}
	if err := config.Write(path, cfg, configForce); err != nil {
		fatal("Error writing config", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write the default configuration to scribe.yaml")
	configCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file with --init")
	rootCmd.AddCommand(configCmd)
}
