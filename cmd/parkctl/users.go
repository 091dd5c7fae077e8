package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jrsteele09/parkctl/users"
)

func usersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse user accounts",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
	}

	cmd.AddCommand(
		usersListCmd(a),
		usersPagesCmd(a),
		usersFindCmd(a),
	)

	return cmd
}

func printUserTable(list []users.User) {
	fmt.Printf("%-20s %-16s %-28s %s\n", "NAME", "USERNAME", "EMAIL", "ROLE")
	for _, u := range list {
		fmt.Printf("%-20s %-16s %-28s %s\n", u.Name, u.Username, u.Email, u.Role)
	}
}

func usersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every user",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.users.List(cmd.Context())
			if err != nil {
				return err
			}
			printUserTable(list)
			info("%d user(s)", len(list))
			return nil
		},
	}
}

func usersPagesCmd(a *app) *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List users one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.users.Paginated(cmd.Context(), page, size)
			if err != nil {
				return err
			}
			printUserTable(result.Content)
			info("Page %d of %d (%d total)", result.CurrentPage, result.TotalPages, result.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&size, "size", 10, "page size")
	return cmd
}

func usersFindCmd(a *app) *cobra.Command {
	var name, username, email string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Look up a single user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && username == "" && email == "" {
				return fmt.Errorf("provide at least one of --name, --username or --email")
			}

			user, err := a.users.Find(cmd.Context(), users.FindFilter{
				Name:     name,
				Username: username,
				Email:    email,
			})
			if err != nil {
				return err
			}
			printUserTable([]users.User{user})
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "match by name")
	cmd.Flags().StringVar(&username, "username", "", "match by username")
	cmd.Flags().StringVar(&email, "email", "", "match by email")
	return cmd
}
