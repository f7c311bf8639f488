package cli

import (
	"fmt"

	"github.com/alexanderramin/ecoquest/internal/catalog"
	"github.com/alexanderramin/ecoquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the challenge prompts for every type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTracker(app); err != nil {
				return err
			}
			c := app.Tracker.Catalog()

			if asYAML {
				data, err := catalog.Marshal(c)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(c))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the catalog as YAML, ready to edit and load via ECOQUEST_CATALOG")

	return cmd
}
