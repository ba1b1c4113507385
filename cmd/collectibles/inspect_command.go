package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/parser"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "Show the used range, merges and comments of every sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.config.Paths.Workbook
			if len(args) == 1 {
				path = args[0]
			}

			wb, err := parser.OpenWorkbook(path)
			if err != nil {
				return err
			}
			defer wb.Close()

			stats, err := wb.Inspect()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(stats))
			for _, s := range stats {
				rows = append(rows, []string{
					s.Name,
					s.UsedRange,
					strconv.Itoa(s.Rows),
					strconv.Itoa(s.Columns),
					strconv.Itoa(s.NonEmpty),
					strconv.Itoa(s.Merges),
					strconv.Itoa(s.Comments),
				})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, renderTable(w,
				[]string{"Sheet", "Used range", "Rows", "Columns", "Non-empty", "Merges", "Comments"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
				nil,
			))
			return nil
		},
	}
}
