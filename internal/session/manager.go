// Package session owns the authentication lifecycle: bootstrap from stored
// credentials, login, register, logout, and the derived current-user view.
// It is the single writer of the credential store.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/credentials"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/api"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// State is the session lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrSessionExpired marks a rejected refresh token. Callers should log out
// and re-authenticate. The bootstrap path never surfaces it; a stale token
// there just clears the store and lands in Anonymous.
var ErrSessionExpired = errors.New("session expired")

// ErrNotAuthenticated is returned by operations that need a logged-in user.
var ErrNotAuthenticated = errors.New("not logged in")

// ValidationError is a client-side input failure raised before any network
// call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Manager drives the session state machine. One Manager per process; safe
// for concurrent use. All credential store writes go through it.
type Manager struct {
	api    *api.Client
	store  *credentials.Store
	logger *slog.Logger

	mu     sync.Mutex
	state  State
	user   *models.User
	booted bool // Init already ran or is running
}

// NewManager returns a manager in the Uninitialized state.
func NewManager(apiClient *api.Client, store *credentials.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{api: apiClient, store: store, logger: logger, state: StateUninitialized}
}

// Init bootstraps the session from stored credentials. With a stored pair it
// issues one who-am-I call; an invalid or expired token clears the store and
// lands in Anonymous without surfacing an error. Only the first call does
// work; repeated or concurrent calls never re-trigger the who-am-I call.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	if m.booted {
		m.mu.Unlock()
		return nil
	}
	m.booted = true
	m.state = StateLoading
	m.mu.Unlock()

	pair, err := m.store.Load()
	if err != nil || pair == nil {
		m.setAnonymous()
		return nil
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		if api.IsStatus(err, 401) || api.IsStatus(err, 403) {
			m.logger.Debug("stored token rejected, clearing credentials")
			_ = m.store.Clear()
			m.setAnonymous()
			return nil
		}
		// Transport or server failure: stay anonymous for this process but
		// keep the stored pair, the token may still be good.
		m.setAnonymous()
		return err
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = user
	m.mu.Unlock()
	return nil
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.state = StateAnonymous
	m.user = nil
	m.mu.Unlock()
}

// Login authenticates with email and password. On success the token pair is
// persisted and the session becomes Authenticated; on failure the state is
// left unchanged and the error is returned to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Message: "required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "required"}
	}
	resp, err := m.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, resp)
}

// RegisterInput carries the account-creation fields.
type RegisterInput struct {
	Email            string
	Password         string
	ConfirmPassword  string
	FullName         string
	OrganizationName string
}

// Register creates an account and tenant, then establishes the session the
// same way Login does. Password confirmation is checked before any network
// call; uniqueness is the server's call.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "required"}
	}
	if in.Password == "" {
		return nil, &ValidationError{Field: "password", Message: "required"}
	}
	if in.Password != in.ConfirmPassword {
		return nil, &ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}
	if in.OrganizationName == "" {
		return nil, &ValidationError{Field: "organization_name", Message: "required"}
	}
	resp, err := m.api.Register(ctx, api.RegisterRequest{
		Email:            in.Email,
		Password:         in.Password,
		ConfirmPassword:  in.ConfirmPassword,
		FullName:         in.FullName,
		OrganizationName: in.OrganizationName,
	})
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, resp)
}

// staticToken feeds a not-yet-persisted access token to the API client.
type staticToken string

func (t staticToken) AccessToken() string { return string(t) }

// establish resolves the user and moves to Authenticated. When the auth
// response does not embed the user, a who-am-I call with the fresh token
// fills it in. The pair is persisted only once the user is known, so a
// failed login never leaves tokens behind.
func (m *Manager) establish(ctx context.Context, resp *api.AuthResponse) (*models.User, error) {
	user := resp.User
	if user == nil {
		ac := *m.api
		ac.Tokens = staticToken(resp.AccessToken)
		var err error
		user, err = ac.Me(ctx)
		if err != nil {
			return nil, err
		}
	}
	if err := m.store.Save(credentials.Pair{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}); err != nil {
		return nil, fmt.Errorf("persist credentials: %w", err)
	}
	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = user
	m.booted = true
	m.mu.Unlock()
	return user, nil
}

// Refresh exchanges the stored refresh token for a new pair. The new pair
// replaces the old one atomically from the caller's point of view.
func (m *Manager) Refresh(ctx context.Context) error {
	pair, err := m.store.Load()
	if err != nil || pair == nil {
		return ErrNotAuthenticated
	}
	resp, err := m.api.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		if api.IsStatus(err, 401) {
			return errors.Join(ErrSessionExpired, err)
		}
		return err
	}
	return m.store.Save(credentials.Pair{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	})
}

// Logout clears the stored credentials and the local user. It always
// succeeds from the caller's point of view; a user must never be left
// looking authenticated after asking to leave.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clearing credentials failed", "err", err)
	}
	m.mu.Lock()
	m.state = StateAnonymous
	m.user = nil
	m.booted = true
	m.mu.Unlock()
}

// ChangePassword rotates the current user's password. The confirmation
// mismatch is caught before the network call.
func (m *Manager) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if next != confirm {
		return &ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}
	if !m.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return m.api.ChangePassword(ctx, current, next, confirm)
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the authenticated user, or nil when Anonymous.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateAuthenticated && m.user != nil
}

// IsAdmin is derived from the current user on every call, never cached.
func (m *Manager) IsAdmin() bool {
	return m.CurrentUser().IsAdmin()
}
