package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickhero/internal/games/stickhero"
	"github.com/vovakirdan/stickhero/internal/platform/tui"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded run",
	Long: `Replay a run from the journal with the seed, config and input it was
played with. With --headless the run is re-simulated without a UI and its
final state is printed.

Examples:
  stickhero replay 3
  stickhero replay 3 --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Re-simulate without a UI and print the result")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("invalid run id %q", args[0])
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, err := openStore(logger)
	if err != nil {
		fail("could not open run journal: %v", err)
	}
	run, err := store.LoadRun(id)
	store.Close()
	if err != nil {
		fail("%v", err)
	}

	if flagHeadless {
		snap, err := stickhero.Replay(run.Recording())
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("Run #%d (seed %d, played %s)\n", run.ID, run.Seed, run.CreatedAt.Format("Jan 02 15:04"))
		fmt.Printf("  Score:     %d\n", snap.Score)
		fmt.Printf("  Ticks:     %d\n", snap.Tick)
		fmt.Printf("  Phase:     %s\n", snap.Phase)
		fmt.Printf("  Platforms: %d\n", snap.Platforms)
		return
	}

	logger.Info("replaying run", "id", run.ID, "seed", run.Seed)
	if err := tui.RunReplay(run.Recording(), logger, runtimeConfig()); err != nil {
		fail("replaying run: %v", err)
	}
}
