package cli

import (
	"fmt"

	"github.com/alexanderramin/ecoquest/internal/service"
	"github.com/alexanderramin/ecoquest/internal/stats"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need: the tracker plus terminal wiring.
type App struct {
	Tracker service.ChallengeTracker

	// TrendDays is the default window for stats and the dashboard.
	TrendDays int

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Confirm overrides the reset confirmation. Nil selects a huh prompt on
	// a terminal and declines otherwise.
	Confirm service.Confirmer
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) trendDays() int {
	if app.TrendDays > 0 {
		return stats.ClampTrendWindow(app.TrendDays)
	}
	return stats.DefaultTrendWindow
}

// NewRootCmd creates the top-level "ecoquest" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ecoquest",
		Short:         "Daily eco-challenges with progress tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTypeCmd(app),
		newGenerateCmd(app),
		newOutcomeCmd(app, outcomeDone),
		newOutcomeCmd(app, outcomeFail),
		newResetCmd(app),
		newStatsCmd(app),
		newHistoryCmd(app),
		newCatalogCmd(app),
		newDashboardCmd(app),
	)

	return root
}

func requireTracker(app *App) error {
	if app.Tracker == nil {
		return fmt.Errorf("tracker is not configured")
	}
	return nil
}
