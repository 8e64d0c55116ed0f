// Package config resolves the testgen home directory and client settings.
package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

type homeKey struct{}
type apiURLKey struct{}

// WithHome stores the testgen home path in the context.
func WithHome(ctx context.Context, home string) context.Context {
	return context.WithValue(ctx, homeKey{}, home)
}

// HomeFrom returns the testgen home path from the context, if set.
func HomeFrom(ctx context.Context) (string, bool) {
	v := ctx.Value(homeKey{})
	s, ok := v.(string)
	return s, ok
}

// MustHomeFrom returns the home path from the context, or panics if not set.
func MustHomeFrom(ctx context.Context) string {
	if h, ok := HomeFrom(ctx); ok && h != "" {
		return h
	}
	panic("testgen home missing from context")
}

// WithAPIURL stores the resolved API base URL in the context.
func WithAPIURL(ctx context.Context, u string) context.Context {
	return context.WithValue(ctx, apiURLKey{}, u)
}

// APIURLFrom returns the resolved API base URL from the context, if set.
func APIURLFrom(ctx context.Context) string {
	s, _ := ctx.Value(apiURLKey{}).(string)
	return s
}

// ResolveHome returns the testgen home directory (override, TESTGEN_HOME, or
// default ~/.testgen).
func ResolveHome(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	if env := os.Getenv("TESTGEN_HOME"); env != "" {
		return filepath.Clean(env), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("could not determine user home directory")
	}
	return filepath.Join(home, ".testgen"), nil
}
