package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List configured host profiles",
	Args:  cobra.NoArgs,
	RunE:  runHosts,
}

func init() {
	rootCmd.AddCommand(hostsCmd)
}

func runHosts(cmd *cobra.Command, args []string) error {
	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}

	if len(cfg.Hosts) == 0 {
		logInfo("No hosts configured")
		return nil
	}

	names := make([]string, 0, len(cfg.Hosts))
	for name := range cfg.Hosts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		host := cfg.Hosts[name]
		marker := " "
		if name == cfg.DefaultHost {
			marker = "*"
		}
		target := host.Address
		if host.Local {
			target = "(local)"
		}
		fmt.Printf("%s %s  %s\n", marker, name, target)
	}
	return nil
}
