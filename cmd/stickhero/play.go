package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickhero/internal/games/stickhero"
	"github.com/vovakirdan/stickhero/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Stick Hero.

Controls:
  Mouse hold    - Grow the rod; release to drop it
  Space/Enter   - Start or stop growing the rod
  P/Esc         - Pause
  R             - Restart (after a miss)
  Ctrl+S        - Save a screenshot
  Ctrl+Y        - Copy the frame to the clipboard
  Q/Ctrl+C      - Quit

Every finished run is recorded in the run journal and can be replayed.

Examples:
  stickhero play
  stickhero play --seed 42
  stickhero play --config ./my-stickhero.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Continue without storage - the game still works
	var store tui.RunStore
	if s, err := openStore(logger); err != nil {
		logger.Warn("could not open run journal", "error", err)
	} else {
		defer s.Close()
		store = s
	}

	if err := tui.Run(stickhero.New(), store, logger, runtimeConfig()); err != nil {
		logger.Error("game stopped", "error", err)
		fail("running game: %v", err)
	}
}
