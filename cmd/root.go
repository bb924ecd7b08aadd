package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	hostName   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "switchctl",
	Short: "FreeSWITCH configuration management CLI",
	Long: `switchctl manages a FreeSWITCH server's XML configuration over SSH.

It keeps the remote config squashed into a single canonical
freeswitch.xml, supports safe commit/rollback of edits, and exposes
the server's console for status queries:
  - sofia profile, gateway and alias status
  - directory user listings
  - ad-hoc fs_cli commands`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&hostName, "host", "H", "", "Host profile from the config file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the client config file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
