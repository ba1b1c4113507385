package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/locations"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/output"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var locationsPath string

	cmd := &cobra.Command{
		Use:   "validate [catalog.json]",
		Short: "Check a generated catalog against the location reference table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.config.Paths.Output
			if len(args) == 1 {
				path = args[0]
			}
			locationsPath = stringFlag(cmd, "locations", locationsPath, ctx.config.Paths.Locations)

			locs, err := locations.Load(locationsPath)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer f.Close()

			catalog, err := output.LoadCatalog(f, locs)
			if err != nil {
				var problems models.ValidationErrors
				if errors.As(err, &problems) {
					for _, p := range problems {
						fmt.Fprintln(cmd.OutOrStdout(), p.Error())
					}
					return fmt.Errorf("%s: %d problems found", path, len(problems))
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d types, %d items\n", path, len(catalog), catalog.ItemCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&locationsPath, "locations", "", "Location reference table (default from config)")

	return cmd
}
