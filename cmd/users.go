package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlexanderBarlow/catering-any/internal/analytics"
	"github.com/AlexanderBarlow/catering-any/internal/auth"
	"github.com/AlexanderBarlow/catering-any/internal/store"

	"github.com/spf13/cobra"
)

var (
	userSearch     string
	userRole       string
	userActiveOnly bool

	newUserName  string
	newUserEmail string
	newUserRole  string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "User administration: directory, create, enable/disable, remove",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()
		cobra.CheckErr(app.requireRole(auth.CanManageUsers, "manage users"))

		userStore := store.NewUserStore(app.src, app.rec)
		cobra.CheckErr(userStore.Load(ctx))

		filtered := analytics.FilterUsers(userStore.Users(), analytics.UserFilter{
			Search:     userSearch,
			Role:       userRole,
			ActiveOnly: userActiveOnly,
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE\tCREATED")
		for _, u := range filtered {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n",
				u.ID, u.Name, u.Email, u.Role, u.Active, u.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user; prints the one-time temporary password",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()
		cobra.CheckErr(app.requireRole(auth.CanManageUsers, "manage users"))

		userStore := store.NewUserStore(app.src, app.rec)
		cobra.CheckErr(userStore.Load(ctx))

		created, tempPassword, err := userStore.Add(ctx, store.UserForm{
			Name:  newUserName,
			Email: newUserEmail,
			Role:  newUserRole,
		})
		cobra.CheckErr(err)
		fmt.Printf("Created %s (%s)\n", created.Email, created.ID)
		if tempPassword != "" {
			fmt.Println("Temporary password (shown once):", tempPassword)
		}
	},
}

func setActiveCmd(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			app, err := newApp(ctx)
			cobra.CheckErr(err)
			defer app.Close()
			cobra.CheckErr(app.requireRole(auth.CanManageUsers, "manage users"))

			userStore := store.NewUserStore(app.src, app.rec)
			cobra.CheckErr(userStore.Load(ctx))

			updated, err := userStore.SetActive(ctx, args[0], active)
			cobra.CheckErr(err)
			state := "disabled"
			if updated.Active {
				state = "enabled"
			}
			fmt.Printf("%s is now %s\n", updated.Email, state)
		},
	}
}

var usersRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a user account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()
		cobra.CheckErr(app.requireRole(auth.CanManageUsers, "manage users"))

		userStore := store.NewUserStore(app.src, app.rec)
		cobra.CheckErr(userStore.Load(ctx))
		cobra.CheckErr(userStore.Remove(ctx, args[0]))
		fmt.Println("Removed", args[0])
	},
}

func init() {
	usersCmd.Flags().StringVar(&userSearch, "search", "", "Name or email substring filter")
	usersCmd.Flags().StringVar(&userRole, "role", analytics.RoleAll, "Role filter: ADMIN, MANAGER, STAFF or All")
	usersCmd.Flags().BoolVar(&userActiveOnly, "active-only", false, "Only show active accounts")

	usersAddCmd.Flags().StringVar(&newUserName, "name", "", "Full name")
	usersAddCmd.Flags().StringVar(&newUserEmail, "email", "", "Email address")
	usersAddCmd.Flags().StringVar(&newUserRole, "role", "STAFF", "Role: ADMIN, MANAGER or STAFF")

	usersCmd.AddCommand(
		usersAddCmd,
		setActiveCmd("disable", "Disable a user account", false),
		setActiveCmd("enable", "Enable a user account", true),
		usersRemoveCmd,
	)
	rootCmd.AddCommand(usersCmd)
}
