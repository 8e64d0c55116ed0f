// Package jira tracks the derived Jira connection state and waits for the
// out-of-band OAuth flow to complete.
package jira

import (
	"context"
	"errors"
	"time"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// StatusReader is the slice of the resource client this package needs.
type StatusReader interface {
	JiraStatus(ctx context.Context) (*models.JiraStatus, error)
}

// State is the two-valued connection state derived from status reads. The
// zero value is NotConnected. There is no automatic return transition;
// disconnection is observed lazily on a later poll.
type State struct {
	Connected bool
	SiteName  string
}

// FromStatus derives the state from one status read.
func FromStatus(st *models.JiraStatus) State {
	if st == nil || !st.IsConnected {
		return State{}
	}
	return State{Connected: true, SiteName: st.SiteName}
}

// ErrNotConnected is returned by WaitConnected when the attempts run out
// before a successful status read reports a connection.
var ErrNotConnected = errors.New("jira connection not established")

// WaitConnected polls the status endpoint every interval until it reports a
// connection, the context is cancelled, or maxAttempts polls have been made
// (0 means unbounded). Poll errors are tolerated; the OAuth redirect may not
// have completed yet.
func WaitConnected(ctx context.Context, r StatusReader, interval time.Duration, maxAttempts int) (State, error) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	attempts := 0
	for {
		st, err := r.JiraStatus(ctx)
		if err == nil && st.IsConnected {
			return FromStatus(st), nil
		}
		attempts++
		if maxAttempts > 0 && attempts >= maxAttempts {
			return State{}, ErrNotConnected
		}
		select {
		case <-ctx.Done():
			return State{}, ctx.Err()
		case <-ticker.C:
		}
	}
}
