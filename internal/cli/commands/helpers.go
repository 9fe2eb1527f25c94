// Package commands implements the proftree subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/proftree/internal/cli/config"
	"github.com/leapstack-labs/proftree/internal/cli/output"
)

// getConfig returns the loaded configuration, or defaults when no
// LoadConfig has run (e.g. in direct command tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		OutputFormat:    config.DefaultOutput,
		DetailThreshold: config.DefaultDetailThreshold,
	}
}

// newRenderer builds a renderer for the command from the current
// configuration.
func newRenderer(cmd *cobra.Command) *output.Renderer {
	cfg := getConfig()
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
}
