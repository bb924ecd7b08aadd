package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/console"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression in fs_cli",
	Long: `Evaluate a FreeSWITCH expression and print the result, e.g.

  switchctl eval '${local_ip_v4}'
  switchctl eval '${domain}'`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	return withConsole(func(ctx context.Context, cli *console.Client) error {
		out, err := cli.Eval(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	})
}
