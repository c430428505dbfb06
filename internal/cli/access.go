package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newUnlockCmd(a *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "unlock <board-id> <access-code>",
		Short: "Unlock a board with its access code",
		Long: `Unlock checks the code with the server and remembers the board in the
local state file. The record is a convenience, not a security boundary.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if err := a.gate.Unlock(cmd.Context(), a.client, args[0], args[1], email); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Board %s unlocked\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email recorded with the access")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if password == "" {
				password = a.v.GetString("admin_password")
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Admin password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}
			if err := a.gate.AdminLogin(cmd.Context(), a.client, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in as admin")
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "admin password (or KANBANCTL_ADMIN_PASSWORD)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	var forget bool
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget admin status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if err := a.gate.Logout(); err != nil {
				return err
			}
			if forget {
				if err := a.gate.ClearAll(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
	cmd.Flags().BoolVar(&forget, "forget-boards", false, "also forget every unlocked board")
	return cmd
}
