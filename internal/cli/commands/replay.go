package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/proftree/internal/cli/config"
	"github.com/leapstack-labs/proftree/internal/cli/output"
	"github.com/leapstack-labs/proftree/internal/scenario"
)

// ReplayOptions holds options for the replay command.
type ReplayOptions struct {
	Real      bool // spend real wall-clock time on each step
	NoSummary bool // skip the summary table
}

// NewReplayCommand creates the replay command.
func NewReplayCommand() *cobra.Command {
	opts := &ReplayOptions{}
	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml> [scenario.yaml...]",
		Short: "Replay timing scenarios and print profiling reports",
		Long: `Replay one or more YAML timing scenarios against the profiler and print
each resulting timing tree together with a summary table.

By default steps advance a simulated clock, so replays finish instantly
and report exactly the declared durations. With --real each step sleeps
for its declared duration instead.`,
		Example: `  # Replay a scenario with a simulated clock
  proftree replay checkout.yaml

  # Replay several scenarios
  proftree replay checkout.yaml search.yaml

  # Spend real wall-clock time on each step
  proftree replay --real checkout.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Real, "real", false, "Sleep for each step's duration instead of simulating the clock")
	cmd.Flags().BoolVar(&opts.NoSummary, "no-summary", false, "Skip the summary table")

	return cmd
}

func runReplay(cmd *cobra.Command, paths []string, opts *ReplayOptions) error {
	cfg := getConfig()
	r := newRenderer(cmd)
	logger := config.GetLogger(cmd.Context())

	replayer := &scenario.Replayer{
		Realtime:        opts.Real,
		DetailThreshold: cfg.DetailThreshold,
	}

	logger.Debug("replaying scenarios", "count", len(paths), "realtime", opts.Real)

	results := scenario.ReplayAll(cmd.Context(), replayer, paths)

	styles := r.Styles()
	failed := 0
	for i, res := range results {
		if !res.Success {
			failed++
			r.Errorf("Error: %s: %s\n", paths[i], res.ErrorStack.Error())
			continue
		}

		rep := res.Data
		r.Println("")
		r.Println(styles.Header1.Render(rep.Label) + styles.Muted.Render(fmt.Sprintf("  (run %s)", rep.RunID)))
		r.Println(styles.Bold.Render(fmt.Sprintf("total %dms", rep.Duration)))
		r.Println("")
		r.Println(rep.Dump)

		if !opts.NoSummary {
			r.Println("")
			r.Println(styles.Header2.Render("Summary"))
			renderSummary(r, rep)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

// renderSummary prints the flattened entry table.
func renderSummary(r *output.Renderer, rep *scenario.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Label", "Start", "Duration", "Self", "% Parent", "% Total"})

	for _, row := range rep.Rows {
		indent := strings.Repeat("  ", row.Depth)
		t.AppendRow(table.Row{
			indent + row.Label,
			fmt.Sprintf("%dms", row.Start),
			formatMillis(row.Duration),
			formatMillis(row.Self),
			formatFraction(row.OfParent),
			formatFraction(row.OfTotal),
		})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// formatMillis renders a duration figure; negative means unknown.
func formatMillis(ms int64) string {
	if ms < 0 {
		return "-"
	}
	return fmt.Sprintf("%dms", ms)
}

// formatFraction renders a [0,1] fraction as whole percent, "" for 0.
func formatFraction(f float64) string {
	if f <= 0 {
		return ""
	}
	return fmt.Sprintf("%.0f%%", f*100)
}
