package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/output"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/profile"
)

func newMigrateProfileCommand(ctx *commandContext) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "migrate-profile [profile.json]",
		Short: "Convert an exported player profile to the current version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath = stringFlag(cmd, "catalog", catalogPath, ctx.config.Paths.Output)

			f, err := os.Open(catalogPath)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			catalog, err := output.ReadCatalog(f)
			_ = f.Close()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read profile: %w", err)
			}

			migrated, err := profile.MigrateJSON(data, catalog)
			if err != nil {
				return err
			}
			if err := migrated.Validate(); err != nil {
				return fmt.Errorf("migrated profile is invalid: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(migrated)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Generated catalog used to nest completed items (default from config)")

	return cmd
}
