package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsf-game/dsf/game/config"
	"github.com/dsf-game/dsf/internal/host"
)

// validateCmd loads the configuration with strict parsing and reports what it resolved to
var validateCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Check a configuration file and print the resolved settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return fmt.Errorf("--config is required")
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		describeConfig(cmd, cfg)
		return nil
	},
}

func describeConfig(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config OK: %s\n", configPath)
	fmt.Fprintf(out, "time_scale: %v\n", cfg.Debug.TimeScale)
	fmt.Fprintf(out, "time_scale_presets: %v\n", cfg.Debug.TimeScalePresets)
	b := host.Bindings(cfg.Bindings)
	pairs := make([]string, 0, len(b))
	for _, k := range b.Keys() {
		pairs = append(pairs, k+"="+b[k])
	}
	fmt.Fprintf(out, "bindings: %s\n", strings.Join(pairs, ", "))
}
