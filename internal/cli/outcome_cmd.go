package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ecoquest/internal/cli/formatter"
	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/spf13/cobra"
)

type outcomeCommand struct {
	use     string
	aliases []string
	short   string
	outcome domain.Outcome
}

var (
	outcomeDone = outcomeCommand{
		use:     "done",
		aliases: []string{"complete"},
		short:   "Mark the current challenge as completed",
		outcome: domain.OutcomeCompleted,
	}
	outcomeFail = outcomeCommand{
		use:     "fail",
		aliases: []string{"skip"},
		short:   "Mark the current challenge as not completed",
		outcome: domain.OutcomeFailed,
	}
)

func newOutcomeCmd(app *App, oc outcomeCommand) *cobra.Command {
	return &cobra.Command{
		Use:     oc.use,
		Aliases: oc.aliases,
		Short:   oc.short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTracker(app); err != nil {
				return err
			}
			entry, err := app.Tracker.RecordOutcome(cmd.Context(), oc.outcome)
			if errors.Is(err, domain.ErrNoActiveChallenge) {
				return fmt.Errorf("%w: run 'ecoquest generate' first", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecorded(entry, app.Tracker.StreakCount()))
			return nil
		},
	}
}
