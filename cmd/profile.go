package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	profileName  string
	profileEmail string

	currentPassword string
	newPassword     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed-in account",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()

		user, ok := app.sessions.User()
		if !ok {
			cobra.CheckErr(errors.New("not signed in"))
		}

		// Prefer the server's copy when reachable; the saved session is
		// the fallback so the command still works offline.
		if app.client != nil {
			if fresh, err := app.client.Me(ctx); err == nil {
				user = fresh
			}
		}

		fmt.Println("Name: ", user.Name)
		fmt.Println("Email:", user.Email)
		fmt.Println("Role: ", user.Role)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the signed-in account's name or email",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()

		current, ok := app.sessions.User()
		if !ok {
			cobra.CheckErr(errors.New("not signed in"))
		}
		if app.client == nil {
			cobra.CheckErr(errors.New("profile update requires api_base to be configured"))
		}

		name := profileName
		if name == "" {
			name = current.Name
		}
		email := profileEmail
		if email == "" {
			email = current.Email
		}

		updated, err := app.client.UpdateMe(ctx, name, email)
		cobra.CheckErr(err)
		cobra.CheckErr(app.sessions.SetUser(updated))
		fmt.Printf("Profile saved: %s <%s>\n", updated.Name, updated.Email)
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the signed-in account's password",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()

		if _, ok := app.sessions.User(); !ok {
			cobra.CheckErr(errors.New("not signed in"))
		}
		if app.client == nil {
			cobra.CheckErr(errors.New("password change requires api_base to be configured"))
		}

		oldPW := currentPassword
		if oldPW == "" {
			oldPW = prompt("Current password: ")
		}
		newPW := newPassword
		if newPW == "" {
			newPW = prompt("New password: ")
		}

		cobra.CheckErr(app.client.ChangePassword(ctx, oldPW, newPW))
		fmt.Println("Password changed")
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "New display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "New email address")

	profilePasswordCmd.Flags().StringVar(&currentPassword, "current", "", "Current password")
	profilePasswordCmd.Flags().StringVar(&newPassword, "new", "", "New password")

	profileCmd.AddCommand(profileUpdateCmd, profilePasswordCmd)
	rootCmd.AddCommand(profileCmd)
}
