package cli

import (
	"fmt"

	"github.com/alexanderramin/ecoquest/internal/cli/formatter"
	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "new"},
		Short:   "Draw a new challenge of the active type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTracker(app); err != nil {
				return err
			}
			ctx := cmd.Context()

			if typeFlag != "" {
				t, err := domain.ParseChallengeType(typeFlag)
				if err != nil {
					return err
				}
				if err := app.Tracker.SelectChallengeType(ctx, t); err != nil {
					return err
				}
			}

			challenge, err := app.Tracker.GenerateChallenge(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChallenge(app.Tracker.ChallengeType(), challenge, true))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Challenge type (consumption, waste, electricity, fuel)")
	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(challengeTypeNames(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
