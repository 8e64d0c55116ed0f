package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/config"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/api"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage client settings",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetURLCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved client settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := config.MustHomeFrom(cmd.Context())
			u := config.APIURLFrom(cmd.Context())
			if u == "" {
				u = api.DefaultBaseURL
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Home:    %s\n", home)
			_, _ = fmt.Fprintf(out, "API URL: %s\n", u)
			return nil
		},
	}
}

func newConfigSetURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-url <api-url>",
		Short: "Persist the API base URL in the settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home := config.MustHomeFrom(cmd.Context())
			s, err := config.LoadSettings(home)
			if err != nil {
				return err
			}
			s.APIURL = args[0]
			if err := config.SaveSettings(home, s); err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "API URL set to %s\n", args[0])
			return nil
		},
	}
}
