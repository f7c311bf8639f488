package cli

import (
	"fmt"

	"github.com/alexanderramin/ecoquest/internal/cli/formatter"
	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/spf13/cobra"
)

func challengeTypeNames() []string {
	names := make([]string, len(domain.AllChallengeTypes))
	for i, t := range domain.AllChallengeTypes {
		names[i] = string(t)
	}
	return names
}

func newTypeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "type [TYPE]",
		Short:     "Show or select the active challenge type",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: challengeTypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTracker(app); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				active := app.Tracker.ChallengeType()
				for _, t := range domain.AllChallengeTypes {
					marker := "  "
					if t == active {
						marker = formatter.StyleGreen.Render("●") + " "
					}
					fmt.Fprintf(out, "%s%s %s\n", marker, formatter.TypeBadge(t), formatter.Dim(string(t)))
				}
				return nil
			}

			t, err := domain.ParseChallengeType(args[0])
			if err != nil {
				return err
			}
			if err := app.Tracker.SelectChallengeType(cmd.Context(), t); err != nil {
				return err
			}
			fmt.Fprintf(out, "Challenge type set to %s.\n", formatter.TypeBadge(t))
			return nil
		},
	}
}
