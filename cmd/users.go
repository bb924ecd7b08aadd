package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalbay/switchctl/internal/fsconfig"
)

var userFilters struct {
	domain  string
	group   string
	user    string
	context string
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List directory users grouped by domain",
	Args:  cobra.NoArgs,
	RunE:  runUsers,
}

func init() {
	usersCmd.Flags().StringVar(&userFilters.domain, "domain", "", "Filter by domain")
	usersCmd.Flags().StringVar(&userFilters.group, "group", "", "Filter by group")
	usersCmd.Flags().StringVar(&userFilters.user, "user", "", "Filter by user id")
	usersCmd.Flags().StringVar(&userFilters.context, "context", "", "Filter by dialplan context")
	rootCmd.AddCommand(usersCmd)
}

func runUsers(cmd *cobra.Command, args []string) error {
	filters := make(map[string]string)
	if userFilters.domain != "" {
		filters["domain"] = userFilters.domain
	}
	if userFilters.group != "" {
		filters["group"] = userFilters.group
	}
	if userFilters.user != "" {
		filters["user"] = userFilters.user
	}
	if userFilters.context != "" {
		filters["context"] = userFilters.context
	}

	return withManager(func(ctx context.Context, mng *fsconfig.Manager) error {
		dir, err := mng.Users(ctx, filters)
		if err != nil {
			return err
		}

		for _, domain := range dir.Domains {
			users := dir.Users[domain]
			fmt.Printf("%s (%d users)\n", domain, len(users))
			for _, user := range users {
				fmt.Printf("  %s", user.Get("userid"))
				if group := user.Get("group"); group != "" {
					fmt.Printf("  group=%s", group)
				}
				if cidName := user.Get("effective_caller_id_name"); cidName != "" {
					fmt.Printf("  %q", cidName)
				}
				fmt.Println()
			}
		}
		return nil
	})
}
