package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the API and save a session",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()

		if app.client == nil {
			cobra.CheckErr(errors.New("login requires api_base to be configured"))
		}

		email := loginEmail
		if email == "" {
			email = prompt("Email: ")
		}
		password := loginPassword
		if password == "" {
			password = prompt("Password: ")
		}

		session, err := app.client.Login(ctx, email, password)
		cobra.CheckErr(err)
		cobra.CheckErr(app.sessions.Save(session))
		fmt.Printf("Logged in as %s (%s)\n", session.User.Email, session.User.Role)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the saved session",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := newApp(ctx)
		cobra.CheckErr(err)
		defer app.Close()

		cobra.CheckErr(app.sessions.Clear())
		fmt.Println("Logged out")
	},
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	rootCmd.AddCommand(loginCmd, logoutCmd)
}
