package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/screens/stats"
)

const statsBarWidth = 30

var statsCmd = &cobra.Command{
	Use:   "stats [dataset-id]",
	Short: "Show the Philippines 2024 gender statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.logger.Sync() //nolint:errcheck

		datasets := e.catalog.Datasets()
		if len(args) == 1 {
			d, ok := e.catalog.Dataset(args[0])
			if !ok {
				return fmt.Errorf("no dataset found for %q", args[0])
			}
			datasets = []content.Dataset{d}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Philippines 2024 Gender Statistics")
		fmt.Fprintln(out, "Source: Women and Men Fact Sheet 2024 (PSA/CHED/DepEd)")
		for _, d := range datasets {
			fmt.Fprintln(out)
			printDataset(out, d)
		}
		return nil
	},
}

func printDataset(out io.Writer, d content.Dataset) {
	fmt.Fprintf(out, "%s (%s)\n", d.Title, d.ID)
	fmt.Fprintln(out, strings.Repeat("─", 72))

	hi := d.Max()
	for _, row := range d.Rows {
		fmt.Fprintf(out, "%-22s F %s %s\n", truncate(row.Category, 22),
			textBar(stats.Share(row.Female, hi)), stats.FormatValue(row.Female, d.Unit))
		fmt.Fprintf(out, "%-22s M %s %s\n", "",
			textBar(stats.Share(row.Male, hi)), stats.FormatValue(row.Male, d.Unit))
	}
}

func textBar(share float64) string {
	filled := min(max(int(share*statsBarWidth+0.5), 0), statsBarWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", statsBarWidth-filled)
}
