// Package cli builds the testgen command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/config"
)

func NewRootCmd(version string) *cobra.Command {
	var (
		homeOverride string
		apiURL       string
		envFile      string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:          "testgen",
		Short:        "AI test case generation for Jira-backed projects",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return err
				}
			}
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			home, err := config.ResolveHome(homeOverride)
			if err != nil {
				return err
			}
			ctx := config.WithHome(cmd.Context(), home)
			ctx = config.WithAPIURL(ctx, config.ResolveAPIURL(apiURL, home))
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&homeOverride, "home", "", "Override testgen home directory (default: ~/.testgen, env: TESTGEN_HOME)")
	cmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (env: TESTGEN_API_URL)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file before running")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newLogoutCmd())
	cmd.AddCommand(newWhoamiCmd())
	cmd.AddCommand(newChangePasswordCmd())

	cmd.AddCommand(newProjectCmd())
	cmd.AddCommand(newFeatureCmd())
	cmd.AddCommand(newTestcaseCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newJiraCmd())
	cmd.AddCommand(newAICmd())
	cmd.AddCommand(newKnowledgeCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}

	return cmd
}
