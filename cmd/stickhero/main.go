// stickhero is a terminal Stick Hero game: grow a rod, drop it across the
// gap and walk over it without falling.
//
// Usage:
//
//	stickhero play           - Play a run
//	stickhero serve          - Start SSH server for remote play
//	stickhero runs           - Browse recorded runs and replay one
//	stickhero replay <id>    - Replay a recorded run
//	stickhero config         - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set run journal path (default: $XDG_DATA_HOME/stickhero/runs.db)
//	--config <path>      - Load the game config from a YAML file
//	--log-file <path>    - Write logs to a file (default: $XDG_STATE_HOME/stickhero/stickhero.log)
//	--log-level <level>  - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stickhero/internal/core"
	"github.com/vovakirdan/stickhero/internal/storage"
)

const (
	defaultDBRel  = "stickhero/runs.db"
	defaultLogRel = "stickhero/stickhero.log"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stickhero",
	Short: "Stick Hero - bridge the gaps in your terminal",
	Long: `Stick Hero is a one-button arcade game for the terminal.

Hold to grow a rod, release to drop it across the gap and walk over it.
Land on the next platform to score; fall short or overshoot and the run ends.

Available commands:
  play     - Play a run
  serve    - Start SSH server for remote play
  runs     - Browse recorded runs
  replay   - Replay a recorded run
  config   - Print the default game config

Examples:
  stickhero play
  stickhero play --seed 42
  stickhero serve --ssh :2222
  stickhero runs
  stickhero replay 3 --headless`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal database (default $XDG_DATA_HOME/"+defaultDBRel+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (default $XDG_STATE_HOME/"+defaultLogRel+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates the logger shared by a command.
// The terminal belongs to the game, so logs go to a file unless toStderr is set
// and no --log-file was given. The returned func closes the file.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "stickhero",
		Level:           level,
	}

	if toStderr && flagLogFile == "" {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	path := flagLogFile
	if path == "" {
		path, err = xdg.StateFile(defaultLogRel)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot resolve log file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}

// dbPath resolves the run journal location.
func dbPath() (string, error) {
	if flagDBPath != "" {
		return flagDBPath, nil
	}
	path, err := xdg.DataFile(defaultDBRel)
	if err != nil {
		return "", fmt.Errorf("cannot resolve database path: %w", err)
	}
	return path, nil
}

// openStore opens the run journal.
func openStore(logger *log.Logger) (*storage.Store, error) {
	path, err := dbPath()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("run journal opened", "path", path)
	return store, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// runtimeConfig builds the game runtime config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
	}
}
