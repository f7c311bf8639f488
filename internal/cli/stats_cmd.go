package cli

import (
	"fmt"

	"github.com/alexanderramin/ecoquest/internal/cli/formatter"
	"github.com/alexanderramin/ecoquest/internal/stats"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals, streak, per-type breakdown and trend",
		Args:  cobra.NoArgs,
	}
	validateDays := addBoundedIntFlag(cmd.Flags(), &days, "days", app.trendDays(), stats.MaxTrendWindow, "Trend window in days")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireTracker(app); err != nil {
			return err
		}
		if err := validateDays(); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(app.Tracker.Snapshot(days)))
		return nil
	}

	return cmd
}
