// Package cmd implements the command-line interface for codeit.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/auth"
	"github.com/codeit-cli/codeit/color"
	"github.com/codeit-cli/codeit/icon"
	"github.com/codeit-cli/codeit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("email", "e", "", "Account email address")
}

// loginCmd authenticates against the marketplace and stores the session token.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the marketplace and store the session token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		email := lo.Must(cmd.Flags().GetString("email"))

		if email == "" {
			handleErr(survey.AskOne(&survey.Input{Message: "Email:"}, &email, survey.WithValidator(survey.Required)))
		}

		var password string
		handleErr(survey.AskOne(&survey.Password{Message: "Password:"}, &password, survey.WithValidator(survey.Required)))

		client := api.NewClient(nil)
		user, err := client.Login(context.Background(), email, password)
		handleErr(err)

		handleErr(auth.SetToken(user.Token))
		handleErr(auth.SaveProfile(user))

		fmt.Printf(
			"%s logged in as %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(user.Username),
		)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

// registerCmd creates a new marketplace account.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new marketplace account and log in",
	Run: func(cmd *cobra.Command, args []string) {
		answers := struct {
			Email    string
			Username string
			Password string
		}{}

		questions := []*survey.Question{
			{Name: "email", Prompt: &survey.Input{Message: "Email:"}, Validate: survey.Required},
			{Name: "username", Prompt: &survey.Input{Message: "Username:"}, Validate: survey.Required},
			{Name: "password", Prompt: &survey.Password{Message: "Password:"}, Validate: survey.MinLength(6)},
		}
		handleErr(survey.Ask(questions, &answers))

		client := api.NewClient(nil)
		user, err := client.Register(context.Background(), answers.Email, answers.Username, answers.Password)
		handleErr(err)

		handleErr(auth.SetToken(user.Token))
		handleErr(auth.SaveProfile(user))

		fmt.Printf(
			"%s welcome aboard, %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(user.Username),
		)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// logoutCmd invalidates the stored session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the current session and remove the stored token",
	Run: func(cmd *cobra.Command, args []string) {
		token, err := auth.Token()
		if err != nil {
			handleErr(errors.New("not logged in"))
		}

		client := api.NewClient(auth.Provider())
		if err := client.Logout(context.Background(), token); err != nil {
			// The local session is removed regardless of the backend answer.
			fmt.Printf("%s server logout failed: %s\n", icon.Get(icon.Fail), err)
		}

		handleErr(auth.DeleteToken())
		handleErr(auth.ClearProfile())

		fmt.Printf("%s logged out\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolP("refresh", "r", false, "Fetch the profile from the backend instead of the local cache")
}

// whoamiCmd displays the profile of the authenticated user.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display the currently authenticated user",
	Run: func(cmd *cobra.Command, args []string) {
		refresh := lo.Must(cmd.Flags().GetBool("refresh"))

		var user *api.User
		if cached := auth.CachedProfile(); !refresh && cached.IsPresent() {
			user = cached.MustGet()
		} else {
			if !auth.LoggedIn() {
				handleErr(errors.New("not logged in"))
			}

			fetched, err := api.NewClient(auth.Provider()).Me(context.Background())
			handleErr(err)

			handleErr(auth.SaveProfile(fetched))
			user = fetched
		}

		fmt.Printf(
			"%s %s\n%s %s\n%s %s\n",
			style.Faint("Username:"), style.Bold(user.Username),
			style.Faint("Email:   "), user.Email,
			style.Faint("Role:    "), user.Role,
		)
	},
}
