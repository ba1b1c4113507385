package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/collectibles-go/pkg/collectibles"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/output"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var (
		locationsPath string
		outputPath    string
		pretty        bool
		publish       bool
		summary       bool
		skipValidate  bool
	)

	cmd := &cobra.Command{
		Use:   "parse [workbook.xlsx]",
		Short: "Extract the catalog from the workbook and write it as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			workbook := cfg.Paths.Workbook
			if len(args) == 1 {
				workbook = args[0]
			}
			locationsPath = stringFlag(cmd, "locations", locationsPath, cfg.Paths.Locations)

			if _, err := os.Stat(workbook); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", workbook)
			}

			opts := collectibles.Options{Logger: ctx.logger(), SkipValidation: skipValidate}
			if skipValidate {
				ctx.logger().Warn("catalog validation disabled")
			}
			catalog, err := collectibles.ExtractFile(workbook, locationsPath, opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}

			data, err := output.ToJSON(catalog, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := output.WriteFileAtomic(outputPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				ctx.logger().Info("wrote catalog", zap.String("path", outputPath), zap.Int("bytes", len(data)))
			} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			if publish {
				client, err := output.NewObjectClient(cfg.Storage)
				if err != nil {
					return err
				}
				info, err := output.NewPublisher(client, cfg.Storage).Publish(cmd.Context(), data)
				if err != nil {
					return fmt.Errorf("publish failed: %w", err)
				}
				ctx.logger().Info("published catalog",
					zap.String("bucket", info.Bucket),
					zap.String("object", info.Key),
					zap.Int64("size", info.Size),
				)
			}

			if summary {
				w := cmd.ErrOrStderr()
				fmt.Fprintln(w, renderSummary(w, catalog))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&locationsPath, "locations", "", "Location reference table (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&publish, "publish", false, "Upload the catalog to object storage after writing")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print per-type item counts to stderr")
	cmd.Flags().BoolVar(&skipValidate, "skip-validation", false, "Write the catalog even if it fails validation (e.g. duplicate item ids)")

	return cmd
}

func renderSummary(w io.Writer, catalog models.Catalog) string {
	rows := make([][]string, 0, len(catalog))
	for _, t := range catalog {
		rows = append(rows, []string{
			t.ID,
			strconv.Itoa(len(t.Subtypes)),
			strconv.Itoa(len(t.Items)),
		})
	}
	footer := []string{
		fmt.Sprintf("%d types", len(catalog)),
		"",
		strconv.Itoa(catalog.ItemCount()),
	}
	return renderTable(w, []string{"Type", "Subtypes", "Items"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignRight}, footer)
}
