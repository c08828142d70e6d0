package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickhero/internal/platform/tui"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `Show the run journal. Scores are recovered by replaying each run.

Controls:
  Up/Down   - Move
  Enter     - Replay the selected run
  D         - Delete the selected run
  Q/Esc     - Quit

Examples:
  stickhero runs
  stickhero runs --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func runRuns(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, err := openStore(logger)
	if err != nil {
		fail("could not open run journal: %v", err)
	}
	defer store.Close()

	width, height := terminalSize()
	rec, ok, err := tui.RunRunsBrowser(store, width, height)
	if err != nil {
		fail("%v", err)
	}
	if !ok {
		return
	}

	logger.Info("replaying run", "seed", rec.Seed, "ticks", rec.Ticks)
	if err := tui.RunReplay(rec, logger, runtimeConfig()); err != nil {
		fail("replaying run: %v", err)
	}
}
