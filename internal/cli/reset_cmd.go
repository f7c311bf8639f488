package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/ecoquest/internal/cli/formatter"
	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/alexanderramin/ecoquest/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// declineConfirmer answers no without asking.
var declineConfirmer service.Confirmer = service.ConfirmFunc(func(context.Context, string) (bool, error) {
	return false, nil
})

// huhConfirmer asks with a huh confirm field on the terminal.
type huhConfirmer struct{}

func (huhConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Reset").
				Negative("Keep").
				Value(&ok),
		),
	).WithTheme(ecoquestHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

func (app *App) resetConfirmer(yes bool) service.Confirmer {
	switch {
	case yes:
		return service.AlwaysConfirm
	case app.Confirm != nil:
		return app.Confirm
	case app.interactive():
		return huhConfirmer{}
	default:
		return declineConfirmer
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress after confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTracker(app); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			err := app.Tracker.Reset(cmd.Context(), app.resetConfirmer(yes))
			if errors.Is(err, domain.ErrResetNotConfirmed) {
				fmt.Fprintln(out, formatter.Dim("Reset cancelled."))
				if !app.interactive() && !yes && app.Confirm == nil {
					fmt.Fprintln(out, formatter.Dim("Pass --yes to reset without a terminal."))
				}
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.StyleYellow.Render("All progress has been reset."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
