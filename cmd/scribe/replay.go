package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/internal/replay"
)

var replayJSON bool

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Run a script of note pad actions and print the resulting notes",
	Long: `Replay feeds a script of actions (add, edit <pos>, title, content, save,
cancel, delete, list) to a fresh note pad, one per line, and prints the
final list. Without a file argument the script is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var script io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				fatal("Error opening script", err)
			}
			defer f.Close()
			script = f
		}

		cfg, _, err := loadConfig()
		if err != nil {
			fatal("Error loading config", err)
		}

		nb, err := newNotebook(cfg, slog.Default())
		if err != nil {
			fatal("Error initializing scribe", err)
		}

		// Keep stdout a single JSON document.
		var listOut io.Writer = os.Stdout
		if replayJSON {
			listOut = os.Stderr
		}

		if err := replay.Run(nb, script, listOut); err != nil {
			fatal("Error replaying script", err)
		}
		slog.Debug("replay finished", "notes", nb.Len(), "events", nb.Drain())

		if replayJSON {
			err = replay.WriteJSON(os.Stdout, nb.Notes())
		} else {
			err = replay.WriteText(os.Stdout, nb.Notes())
		}
		if err != nil {
			fatal("Error writing notes", err)
		}
	},
}

func init() {
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(replayCmd)
}
