package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-klotski/internal/config"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print which klotski.yaml is in use and the values after defaults and
clamping were applied.

With --init, write the default config to the user config directory.

Examples:
  klotski config
  klotski config --init
  klotski config --config ./my-klotski.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the default config to the user config directory")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigInit {
		p, err := config.WriteDefault(config.UserConfigDir())
		switch {
		case errors.Is(err, os.ErrExist):
			fmt.Printf("Config already exists: %s\n", p)
			return nil
		case err != nil:
			return err
		}
		fmt.Printf("Wrote default config to %s\n", p)
		return nil
	}

	cfg, err := config.LoadKlotski(flagConfig)
	if err != nil {
		return err
	}

	source := config.ResolvePath(flagConfig)
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("# source: %s\n", source)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
