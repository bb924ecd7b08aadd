package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/fsconfig"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Squash a multi-file config into one freeswitch.xml",
	Long: `Ensure the remote configuration is a single aggregate document.

If freeswitch.xml is still assembled from X-PRE-PROCESS includes, the
server's live merged view is fetched, normalized, and written as the
new canonical file; the original is kept as a timestamped backup next
to it. A config that is already aggregated is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runAggregate,
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(cmd *cobra.Command, args []string) error {
	return withManager(func(ctx context.Context, mng *fsconfig.Manager) error {
		logSuccess("Config aggregated at %s", mng.File().Path())
		return nil
	})
}
