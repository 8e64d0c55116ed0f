package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

func newAICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Manage AI provider configuration",
	}
	cmd.AddCommand(newAIProvidersCmd())
	cmd.AddCommand(newAIConfigureCmd())
	cmd.AddCommand(newAITestCmd())
	return cmd
}

func newAIProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "Show which AI providers are configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			st, err := c.ListProviders(cmd.Context())
			if err != nil {
				return err
			}
			names := make([]string, 0, len(st.UserConfiguration))
			for name := range st.UserConfiguration {
				names = append(names, name)
			}
			sort.Strings(names)
			out := cmd.OutOrStdout()
			for _, name := range names {
				if st.UserConfiguration[name] {
					_, _ = successColor.Fprintf(out, "%-10s", name)
					_, _ = fmt.Fprintln(out, " configured")
				} else {
					_, _ = fmt.Fprintf(out, "%-10s not configured\n", name)
				}
			}
			return nil
		},
	}
}

// providerConfigFromFlags funnels the flag values through the per-provider
// constructors so only valid field combinations reach the wire.
func providerConfigFromFlags(provider, apiKey, model, baseURL string) (models.ProviderConfig, error) {
	if provider == models.ProviderAzure {
		return models.NewAzureProviderConfig(apiKey, model, baseURL)
	}
	if baseURL != "" {
		return models.ProviderConfig{}, fmt.Errorf("--base-url is only valid with provider %q", models.ProviderAzure)
	}
	return models.NewProviderConfig(provider, apiKey, model)
}

func newAIConfigureCmd() *cobra.Command {
	var provider, apiKey, model, baseURL string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store an AI provider configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := providerConfigFromFlags(provider, apiKey, model, baseURL)
			if err != nil {
				return err
			}
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			if err := c.ConfigureProvider(cmd.Context(), cfg); err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Configured provider %s\n", cfg.Provider)
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "Provider name (openai, anthropic, google, azure)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Provider API key")
	cmd.Flags().StringVar(&model, "model", "", "Model name (provider default when empty)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Endpoint base URL (azure only)")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("api-key")
	return cmd
}

func newAITestCmd() *cobra.Command {
	var provider, apiKey, model, baseURL string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test an AI provider configuration without storing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := providerConfigFromFlags(provider, apiKey, model, baseURL)
			if err != nil {
				return err
			}
			_, c, err := requireSession(cmd)
			if err != nil {
				return err
			}
			res, err := c.TestProviderConnection(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if res.Success {
				_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Connection OK: %s\n", res.Message)
				return nil
			}
			return fmt.Errorf("connection failed: %s", res.Message)
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "Provider name (openai, anthropic, google, azure)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Provider API key")
	cmd.Flags().StringVar(&model, "model", "", "Model name (provider default when empty)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Endpoint base URL (azure only)")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("api-key")
	return cmd
}
