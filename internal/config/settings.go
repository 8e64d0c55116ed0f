package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFile = "config.yaml"

// Settings holds per-user client configuration stored at <home>/config.yaml.
type Settings struct {
	APIURL string `yaml:"api_url"`
}

// LoadSettings loads the settings file. Returns zero settings and nil error
// when the file is missing.
func LoadSettings(home string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(filepath.Join(home, settingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SaveSettings writes the settings file.
func SaveSettings(home string, s Settings) error {
	if err := os.MkdirAll(home, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(&s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(home, settingsFile), data, 0o644)
}

// ResolveAPIURL picks the API base URL: explicit flag, TESTGEN_API_URL env,
// the settings file, then empty (the api package falls back to its default).
func ResolveAPIURL(flagValue, home string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("TESTGEN_API_URL"); env != "" {
		return env
	}
	if s, err := LoadSettings(home); err == nil && s.APIURL != "" {
		return s.APIURL
	}
	return ""
}
