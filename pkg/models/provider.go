package models

import "fmt"

// AI provider names accepted by /ai/configure and /ai/test-connection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
	ProviderAzure     = "azure"
)

// ProviderConfig is a validated provider configuration. Build one through the
// per-provider constructors; only the fields that are valid for the chosen
// provider can be set, so a config that reaches the wire is well-formed.
type ProviderConfig struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Model    string `json:"model,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// NewProviderConfig builds a config for a hosted provider (openai, anthropic,
// google). Model is optional; the server picks its default when empty.
func NewProviderConfig(provider, apiKey, model string) (ProviderConfig, error) {
	switch provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle:
	case ProviderAzure:
		return ProviderConfig{}, fmt.Errorf("provider %q requires a base URL, use NewAzureProviderConfig", provider)
	default:
		return ProviderConfig{}, fmt.Errorf("unknown provider %q", provider)
	}
	if apiKey == "" {
		return ProviderConfig{}, fmt.Errorf("provider %q: api key is required", provider)
	}
	return ProviderConfig{Provider: provider, APIKey: apiKey, Model: model}, nil
}

// NewAzureProviderConfig builds a config for an Azure-hosted deployment,
// which is the only provider that takes an endpoint base URL.
func NewAzureProviderConfig(apiKey, model, baseURL string) (ProviderConfig, error) {
	if apiKey == "" {
		return ProviderConfig{}, fmt.Errorf("provider %q: api key is required", ProviderAzure)
	}
	if baseURL == "" {
		return ProviderConfig{}, fmt.Errorf("provider %q: base URL is required", ProviderAzure)
	}
	return ProviderConfig{Provider: ProviderAzure, APIKey: apiKey, Model: model, BaseURL: baseURL}, nil
}
