package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/console"
	"github.com/signalbay/switchctl/internal/errors"
)

var execCmd = &cobra.Command{
	Use:   "exec -- <command> [args...]",
	Short: "Run a raw fs_cli command",
	Long: `Run an arbitrary console command and print its output, e.g.

  switchctl exec -- sofia status profile internal
  switchctl exec -- reloadacl`,
	Args: cobra.ArbitraryArgs,
	RunE: runExecCmd,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExecCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.ArgumentError("usage: switchctl exec -- <command> [args...]")
	}

	return withConsole(func(ctx context.Context, cli *console.Client) error {
		out, err := cli.Run(ctx, args...)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	})
}
