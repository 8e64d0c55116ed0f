// Package credentials persists the access/refresh token pair under the
// testgen home directory. Tokens are opaque strings; nothing here inspects
// or validates them.
package credentials

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const fileName = "credentials.yaml"

// Pair is the current token pair. Both fields are set or the pair is absent;
// a partial pair is never persisted.
type Pair struct {
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
}

// Store reads and writes the token pair at <home>/credentials.yaml. Safe for
// concurrent use; the session manager is the only writer.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store rooted at the given home directory.
func NewStore(home string) *Store {
	return &Store{path: filepath.Join(home, fileName)}
}

// Save persists the pair with owner-only permissions. A pair missing either
// token is rejected by clearing instead, which keeps the both-or-none
// invariant across restarts.
func (s *Store) Save(p Pair) error {
	if p.AccessToken == "" || p.RefreshToken == "" {
		return s.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(&p)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load returns the stored pair, or (nil, nil) when absent. A file holding a
// partial pair is treated as absent.
func (s *Store) Load() (*Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var p Pair
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.AccessToken == "" || p.RefreshToken == "" {
		return nil, nil
	}
	return &p, nil
}

// Clear removes the stored pair. Clearing an absent pair is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// AccessToken implements api.TokenSource: it returns the current access
// token, or "" when no pair is stored. Storage errors read as absent so an
// unauthenticated call can still go out.
func (s *Store) AccessToken() string {
	p, err := s.Load()
	if err != nil || p == nil {
		return ""
	}
	return p.AccessToken
}
