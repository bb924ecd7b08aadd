package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/fsconfig"
	"github.com/signalbay/switchctl/internal/parse"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sofia profile, gateway and alias status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withManager(func(ctx context.Context, mng *fsconfig.Manager) error {
		status, err := mng.SofiaStatus(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Profiles: %d\n", len(status.Profiles))
		printRows(status.Profiles, "state", "data")

		fmt.Printf("\nGateways: %d\n", len(status.Gateways))
		printRows(status.Gateways, "profile", "state", "data")

		fmt.Printf("\nAliases: %d\n", len(status.Aliases))
		printRows(status.Aliases, "data")

		return nil
	})
}

// printRows prints one line per entry with the selected columns, sorted
// by name for stable output.
func printRows(rows map[string]parse.Row, cols ...string) {
	names := make([]string, 0, len(rows))
	for name := range rows {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("  %s", name)
		for _, col := range cols {
			if v := rows[name][col]; v != "" {
				fmt.Printf("  %s=%s", col, v)
			}
		}
		fmt.Println()
	}
}
