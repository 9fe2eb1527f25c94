package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/proftree/internal/cli/config"
	"github.com/leapstack-labs/proftree/internal/cli/output"
	"github.com/leapstack-labs/proftree/internal/scenario"
)

// exampleScenarioFile is the scaffolded scenario's file name.
const exampleScenarioFile = "checkout.yaml"

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a proftree workspace",
		Long: `Create a proftree.yaml configuration file and an example timing
scenario in the given directory (default: the current directory).`,
		Example: `  # Initialize in the current directory
  proftree init

  # Initialize in a new directory
  proftree init my-profiles

  # Overwrite existing files
  proftree init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(newRenderer(cmd), dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileName)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfigYAML), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	r.StatusLine(config.ConfigFileName, "success", "")

	scenarioPath := filepath.Join(dir, exampleScenarioFile)
	data, err := yaml.Marshal(exampleScenario())
	if err != nil {
		return fmt.Errorf("failed to encode example scenario: %w", err)
	}
	if err := os.WriteFile(scenarioPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", scenarioPath, err)
	}
	r.StatusLine(exampleScenarioFile, "success", "example scenario")

	r.Println("")
	r.Println("Run: proftree replay " + scenarioPath)
	return nil
}

const defaultConfigYAML = `# proftree configuration
output: auto
verbose: false
detail_threshold: 100ms
`

func exampleScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Label: "checkout",
		Steps: []scenario.Step{
			{Label: "load-cart", Duration: 15 * time.Millisecond},
			{Label: "price", Duration: 5 * time.Millisecond, Steps: []scenario.Step{
				{Label: "discounts", Duration: 10 * time.Millisecond, Detail: "3 rules evaluated"},
				{Label: "tax", Duration: 120 * time.Millisecond, Detail: "remote rate lookup"},
			}},
			{Label: "persist", Duration: 30 * time.Millisecond},
		},
	}
}
