package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/session"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				password, err = readPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
			}
			mgr, _ := newSession(cmd)
			user, err := mgr.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Email, user.Role)
			if user.MustChangePassword {
				_, _ = warnColor.Fprintln(cmd.OutOrStdout(), "Your password must be changed, run: testgen change-password")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var email, fullName, org string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword(cmd, "Confirm password: ")
			if err != nil {
				return err
			}
			mgr, _ := newSession(cmd)
			user, err := mgr.Register(cmd.Context(), session.RegisterInput{
				Email:            email,
				Password:         password,
				ConfirmPassword:  confirm,
				FullName:         fullName,
				OrganizationName: org,
			})
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Registered %s in organization %q\n", user.Email, org)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&org, "org", "", "Organization name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _ := newSession(cmd)
			mgr.Logout()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := requireSession(cmd)
			if err != nil {
				return err
			}
			u := mgr.CurrentUser()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n", u.Email)
			if u.FullName != "" {
				_, _ = fmt.Fprintf(out, "Name:  %s\n", u.FullName)
			}
			_, _ = fmt.Fprintf(out, "Role:  %s", u.Role)
			if mgr.IsAdmin() {
				_, _ = fmt.Fprint(out, " (admin)")
			}
			_, _ = fmt.Fprintln(out)
			if u.Organization != nil {
				_, _ = fmt.Fprintf(out, "Org:   %s\n", u.Organization.Name)
			}
			return nil
		},
	}
}

func newChangePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Change the current user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := requireSession(cmd)
			if err != nil {
				return err
			}
			current, err := readPassword(cmd, "Current password: ")
			if err != nil {
				return err
			}
			next, err := readPassword(cmd, "New password: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword(cmd, "Confirm new password: ")
			if err != nil {
				return err
			}
			if err := mgr.ChangePassword(cmd.Context(), current, next, confirm); err != nil {
				return err
			}
			_, _ = successColor.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	}
}
