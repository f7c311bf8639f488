package cli

import (
	"fmt"

	"github.com/alexanderramin/ecoquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 10

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log"},
		Short:   "List recorded challenges, newest first",
		Args:    cobra.NoArgs,
	}
	validateLimit := addBoundedIntFlag(cmd.Flags(), &limit, "limit", defaultHistoryLimit, 0, "Number of entries to show (0 shows all)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireTracker(app); err != nil {
			return err
		}
		if err := validateLimit(); err != nil {
			return err
		}
		snap := app.Tracker.Snapshot(0)
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(snap.History, snap.Now, limit))
		return nil
	}

	return cmd
}
