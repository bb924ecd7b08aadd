package cmd

import (
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/config"
	"github.com/signalbay/switchctl/internal/errors"
	"github.com/signalbay/switchctl/internal/fsconfig"
)

var pullOutput string

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the remote freeswitch.xml for local inspection",
	Args:  cobra.NoArgs,
	RunE:  runPull,
}

func init() {
	pullCmd.Flags().StringVarP(&pullOutput, "output", "o", "", "Destination file (defaults to the per-host cache dir)")
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	name, host, err := resolveHost()
	if err != nil {
		return err
	}
	sess, err := openSession(host)
	if err != nil {
		return err
	}
	defer sess.Close()

	dest := pullOutput
	if dest == "" {
		dir, err := config.CacheDir(name)
		if err != nil {
			return err
		}
		dest = filepath.Join(dir, fsconfig.ConfigFileName)
	}

	confPath := path.Join(host.ConfDir, fsconfig.ConfigFileName)
	f, err := os.Create(dest)
	if err != nil {
		return errors.IOError("create", dest, err)
	}
	defer f.Close()

	if err := sess.Get(confPath, f); err != nil {
		return errors.IOError("fetch", confPath, err)
	}

	logSuccess("Pulled %s to %s", confPath, dest)
	return nil
}
