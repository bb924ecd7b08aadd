package cmd

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/fsconfig"
	"github.com/signalbay/switchctl/internal/tui"
)

var monitorInterval time.Duration

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch sofia status in a live terminal view",
	Args:  cobra.NoArgs,
	RunE:  runMonitor,
}

func init() {
	monitorCmd.Flags().DurationVar(&monitorInterval, "interval", tui.DefaultInterval, "Refresh interval")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	name, _, err := resolveHost()
	if err != nil {
		return err
	}

	return withManager(func(ctx context.Context, mng *fsconfig.Manager) error {
		model := tui.NewMonitor(name, mng.SofiaStatus, monitorInterval)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	})
}
