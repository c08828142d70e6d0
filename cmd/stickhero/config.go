package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickhero/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the built-in default config as YAML. Save it to
$XDG_CONFIG_HOME/stickhero/stickhero.yaml or ./configs/stickhero.yaml and edit
it to change the game. With --resolved, print the config that play would load.

Examples:
  stickhero config > ~/.config/stickhero/stickhero.yaml
  stickhero config --resolved
  stickhero config --resolved --config ./my-stickhero.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the config found by the search order instead of the default")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
