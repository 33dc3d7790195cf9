package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/screens/modules"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Browse the module library",
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules (optionally filtered by kind or search text)",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindVal, _ := cmd.Flags().GetString("kind")
		search, _ := cmd.Flags().GetString("search")

		kind, err := parseKind(kindVal)
		if err != nil {
			return err
		}

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.logger.Sync() //nolint:errcheck

		list := e.catalog.FilterModules(kind, search)
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No modules match your search.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-24s  %-8s  %-6s  %s\n", "ID", "Kind", "Region", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, m := range list {
			fmt.Fprintf(out, "%-24s  %-8s  %-6s  %s\n", m.ID, m.Kind, m.Region, truncate(m.Title, 48))
		}

		fmt.Fprintf(out, "\n%d modules\n", len(list))
		return nil
	},
}

var modulesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a module's article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.logger.Sync() //nolint:errcheck

		m, ok := e.catalog.Module(args[0])
		if !ok {
			return fmt.Errorf("no module found for %q", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  [%s · %s]\n\n", m.Title, m.Kind, m.Region)
		fmt.Fprintln(out, modules.RenderMarkdown(m.Body, 80))
		if len(m.KeyPoints) > 0 {
			fmt.Fprintln(out, "\nKey Takeaways")
			for _, p := range m.KeyPoints {
				fmt.Fprintf(out, "  ✓ %s\n", p)
			}
		}
		if len(m.References) > 0 {
			fmt.Fprintln(out, "\nReferences & Further Reading")
			for i, r := range m.References {
				fmt.Fprintf(out, "  %d. %s\n     %s\n", i+1, r.Label, r.URL)
			}
		}
		if m.Link != "" {
			fmt.Fprintf(out, "\nFull source: %s\n", m.Link)
		}
		return nil
	},
}

// parseKind accepts a kind name in any case; empty means all kinds.
func parseKind(val string) (content.Kind, error) {
	if val == "" {
		return "", nil
	}
	for _, k := range content.AllKinds() {
		if strings.EqualFold(string(k), val) {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid kind %q: must be law, article or study", val)
}

func init() {
	modulesListCmd.Flags().String("kind", "", "Filter by kind (law, article, study)")
	modulesListCmd.Flags().String("search", "", "Filter by text in title or description")

	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesShowCmd)
}
