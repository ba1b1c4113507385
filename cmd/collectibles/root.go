package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "collectibles",
		Short: "Extract the collectible catalog from the checklist workbook",
		Long: `collectibles reads the community checklist workbook, extracts every
collectible category into typed records and writes them as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.envDir, "env-dir", ctx.envDir, "Directory holding the .env file")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newParseCommand(ctx))
	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newMigrateProfileCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd
}
