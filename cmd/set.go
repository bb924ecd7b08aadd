package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/errors"
	"github.com/signalbay/switchctl/internal/fsconfig"
)

var setNoRevert bool

var setCmd = &cobra.Command{
	Use:   "set <path> <attr>=<value> [<attr>=<value>...]",
	Short: "Set attributes on a config element and commit",
	Long: `Set attributes on the element matched by an XML path expression,
then commit the change and reload the server, e.g.

  switchctl set "//configuration[@name='sofia.conf']//profile[@name='internal']/settings/param[@name='debug']" value=1

If the reload fails the file is rolled back to its pre-commit bytes
unless --no-revert is given.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVar(&setNoRevert, "no-revert", false, "Leave the file committed if the reload fails")
	rootCmd.AddCommand(setCmd)
}

// parseAttrArgs turns attr=value arguments into a map.
func parseAttrArgs(args []string) (map[string]string, error) {
	attrs := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, errors.ArgumentError(fmt.Sprintf("%q is not an attr=value pair", arg))
		}
		attrs[key] = value
	}
	return attrs, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	elemPath := args[0]

	attrs, err := parseAttrArgs(args[1:])
	if err != nil {
		return err
	}

	return withManager(func(ctx context.Context, mng *fsconfig.Manager) error {
		elem := mng.Root().FindElement(elemPath)
		if elem == nil {
			return errors.ArgumentError(fmt.Sprintf("no element matches %q", elemPath))
		}
		for key, value := range attrs {
			elem.CreateAttr(key, value)
		}

		elapsed, err := mng.Commit(ctx)
		if err != nil {
			if errors.IsIOError(err) {
				// Upload failed; remote file unchanged, nothing to undo.
				return err
			}
			if setNoRevert {
				logWarning("reload failed, file left committed: %v", err)
				return err
			}
			logWarning("reload failed, rolling back: %v", err)
			if rerr := mng.Revert(); rerr != nil {
				logError("rollback failed, file left committed: %v", rerr)
			}
			return err
		}

		logSuccess("Committed %s in %s", mng.File().Path(), elapsed.Round(time.Millisecond))
		return nil
	})
}
