package cli

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/config"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/credentials"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/session"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/api"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	keyColor     = color.New(color.FgCyan)
)

// newClient builds the API client and credential store for this invocation
// from the home and API URL resolved by the root command.
func newClient(cmd *cobra.Command) (*api.Client, *credentials.Store) {
	home := config.MustHomeFrom(cmd.Context())
	store := credentials.NewStore(home)
	c := api.New(config.APIURLFrom(cmd.Context()), store)
	c.Logger = slog.Default()
	return c, store
}

// newSession builds the session manager without bootstrapping it.
func newSession(cmd *cobra.Command) (*session.Manager, *api.Client) {
	c, store := newClient(cmd)
	return session.NewManager(c, store, slog.Default()), c
}

// requireSession bootstraps the session and fails with a friendly message
// when nobody is logged in.
func requireSession(cmd *cobra.Command) (*session.Manager, *api.Client, error) {
	mgr, c := newSession(cmd)
	if err := mgr.Init(cmd.Context()); err != nil {
		return nil, nil, err
	}
	if !mgr.IsAuthenticated() {
		return nil, nil, fmt.Errorf("not logged in, run %q first", "testgen login")
	}
	return mgr, c, nil
}
