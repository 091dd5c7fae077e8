package main

import (
	"github.com/spf13/cobra"

	"github.com/jrsteele09/parkctl/auth"
	"github.com/jrsteele09/parkctl/session"
)

func loginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the parking backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = prompt("Username: ")
			}
			if password == "" {
				password = prompt("Password: ")
			}
			if err := a.validator.ValidateCredentials(username, password); err != nil {
				return err
			}

			sess, err := a.auth.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			displayBanner()
			success("Signed in as %s <%s>", sess.User.Name, sess.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")

	return cmd
}

func signupCmd(a *app) *cobra.Command {
	var name, username, email string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = prompt("Full name: ")
			}
			if username == "" {
				username = prompt("Username: ")
			}
			if email == "" {
				email = prompt("Email: ")
			}
			password := prompt("Password: ")
			confirm := prompt("Confirm password: ")

			params := auth.SignUpParams{
				Name:     name,
				Username: username,
				Email:    email,
				Password: password,
			}
			if err := a.validator.ValidateSignUp(params, confirm); err != nil {
				return err
			}

			sess, err := a.auth.SignUp(cmd.Context(), params)
			if err != nil {
				return err
			}

			success("Account created. Signed in as %s", sess.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVar(&email, "email", "", "email address")

	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and drop the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			success("Signed out")
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _ := a.store.Current()
			info("Name:     %s", sess.User.Name)
			info("Username: %s", sess.User.Username)
			info("Email:    %s", sess.User.Email)

			if tokenInfo, err := session.InspectToken(sess.Token); err == nil && !tokenInfo.ExpiresAt.IsZero() {
				if tokenInfo.Expired() {
					fail("Token expired at %s", tokenInfo.ExpiresAt.Format("2006-01-02 15:04:05"))
				} else {
					info("Token expires at %s", tokenInfo.ExpiresAt.Format("2006-01-02 15:04:05"))
				}
			}
			return nil
		},
	}
}
