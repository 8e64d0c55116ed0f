package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/credentials"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/api"
)

// newFixture wires a manager against a test server and a temp credential store.
func newFixture(t *testing.T, handler http.Handler) (*Manager, *credentials.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := credentials.NewStore(t.TempDir())
	c := api.New(srv.URL, store)
	return NewManager(c, store, nil), store
}

func TestInit_noCredential(t *testing.T) {
	var calls int32
	mgr, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	if err := mgr.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if mgr.State() != StateAnonymous {
		t.Errorf("state: %v", mgr.State())
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("no credential must mean no network call, got %d", calls)
	}
}

func TestInit_staleTokenClearsStore(t *testing.T) {
	mgr, store := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	if err := store.Save(credentials.Pair{AccessToken: "stale", RefreshToken: "stale"}); err != nil {
		t.Fatal(err)
	}

	// The stale-token path must not surface an error.
	if err := mgr.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if mgr.State() != StateAnonymous {
		t.Errorf("state: %v", mgr.State())
	}
	if p, _ := store.Load(); p != nil {
		t.Errorf("credentials not cleared: %+v", p)
	}
}

func TestInit_serverDownKeepsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	store := credentials.NewStore(t.TempDir())
	if err := store.Save(credentials.Pair{AccessToken: "good", RefreshToken: "good"}); err != nil {
		t.Fatal(err)
	}
	mgr := NewManager(api.New(srv.URL, store), store, nil)

	if err := mgr.Init(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
	if mgr.State() != StateAnonymous {
		t.Errorf("state: %v", mgr.State())
	}
	// The token might still be good; a flaky network must not log the user out.
	if p, _ := store.Load(); p == nil {
		t.Error("credentials were cleared on transport failure")
	}
}

func TestInit_singleFlight(t *testing.T) {
	var meCalls int32
	mgr, store := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&meCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","email":"qa@example.com","role":"qa"}`))
	}))
	if err := store.Save(credentials.Pair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = mgr.Init(context.Background())
		}()
	}
	wg.Wait()
	// Later Init calls return immediately once bootstrapped.
	_ = mgr.Init(context.Background())
	if n := atomic.LoadInt32(&meCalls); n != 1 {
		t.Errorf("who-am-I calls: got %d, want 1", n)
	}
}

func TestLogin_qaUser(t *testing.T) {
	mgr, store := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"a1","refresh_token":"r1","user":{"id":"u1","email":"qa@example.com","role":"qa"}}`))
	}))

	user, err := mgr.Login(context.Background(), "qa@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !mgr.IsAuthenticated() {
		t.Error("IsAuthenticated: want true")
	}
	if mgr.IsAdmin() {
		t.Error("IsAdmin for qa role: want false")
	}
	if user.Email != "qa@example.com" {
		t.Errorf("user: %+v", user)
	}
	p, err := store.Load()
	if err != nil || p == nil || p.AccessToken != "a1" || p.RefreshToken != "r1" {
		t.Fatalf("persisted pair: %+v, err %v", p, err)
	}
}

func TestLogin_failureLeavesStateUnchanged(t *testing.T) {
	mgr, store := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))

	_, err := mgr.Login(context.Background(), "qa@example.com", "wrong")
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Incorrect email or password" {
		t.Fatalf("expected server detail, got %v", err)
	}
	if mgr.IsAuthenticated() {
		t.Error("failed login must not authenticate")
	}
	if p, _ := store.Load(); p != nil {
		t.Errorf("failed login persisted a pair: %+v", p)
	}
}

func TestLogin_noUserInResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"a1","refresh_token":"r1","token_type":"bearer"}`))
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer a1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"u1","email":"qa@example.com","role":"qa"}`))
	})
	mgr, store := newFixture(t, mux)

	user, err := mgr.Login(context.Background(), "qa@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "qa@example.com" {
		t.Errorf("user: %+v", user)
	}
	if p, _ := store.Load(); p == nil || p.AccessToken != "a1" {
		t.Errorf("pair not persisted: %+v", p)
	}
}

func TestLogin_userLookupFailureKeepsStoreClean(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"a1","refresh_token":"r1"}`))
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	})
	mgr, store := newFixture(t, mux)

	if _, err := mgr.Login(context.Background(), "qa@example.com", "pw"); err == nil {
		t.Fatal("expected error when the user lookup fails")
	}
	if mgr.IsAuthenticated() {
		t.Error("failed login must not authenticate")
	}
	// A login that never resolved a user must not change durable state.
	if p, _ := store.Load(); p != nil {
		t.Errorf("failed login persisted a pair: %+v", p)
	}
}

func TestLogin_validation(t *testing.T) {
	t.Parallel()
	mgr := NewManager(api.New("http://127.0.0.1:0", nil), credentials.NewStore(t.TempDir()), nil)

	var vErr *ValidationError
	if _, err := mgr.Login(context.Background(), "", "pw"); !errors.As(err, &vErr) {
		t.Errorf("missing email: got %v", err)
	}
	if _, err := mgr.Login(context.Background(), "a@b.c", ""); !errors.As(err, &vErr) {
		t.Errorf("missing password: got %v", err)
	}
}

func TestRegister_passwordMismatchBeforeNetwork(t *testing.T) {
	var calls int32
	mgr, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	_, err := mgr.Register(context.Background(), RegisterInput{
		Email:            "a@b.c",
		Password:         "one",
		ConfirmPassword:  "two",
		OrganizationName: "acme",
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("validation failure still hit the network %d times", calls)
	}
}

func TestRegister_establishesSession(t *testing.T) {
	mgr, store := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"a2","refresh_token":"r2","user":{"id":"u2","email":"new@acme.io","role":"admin","organization":{"id":"o1","name":"acme"}}}`))
	}))

	user, err := mgr.Register(context.Background(), RegisterInput{
		Email:            "new@acme.io",
		Password:         "pw",
		ConfirmPassword:  "pw",
		OrganizationName: "acme",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !mgr.IsAdmin() {
		t.Error("IsAdmin for admin role: want true")
	}
	if user.Organization == nil || user.Organization.Name != "acme" {
		t.Errorf("organization: %+v", user.Organization)
	}
	if p, _ := store.Load(); p == nil || p.AccessToken != "a2" {
		t.Errorf("persisted pair: %+v", p)
	}
}

func TestLogout_alwaysClears(t *testing.T) {
	mgr, store := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"a1","refresh_token":"r1","user":{"id":"u1","email":"qa@example.com","role":"qa"}}`))
	}))
	if _, err := mgr.Login(context.Background(), "qa@example.com", "pw"); err != nil {
		t.Fatal(err)
	}

	mgr.Logout()
	if mgr.State() != StateAnonymous || mgr.IsAuthenticated() {
		t.Errorf("state after logout: %v", mgr.State())
	}
	if p, _ := store.Load(); p != nil {
		t.Errorf("pair survived logout: %+v", p)
	}
	if mgr.CurrentUser() != nil {
		t.Error("user survived logout")
	}
}

func TestRefresh_replacesPair(t *testing.T) {
	mgr, store := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/refresh" {
			t.Errorf("path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"a-new","refresh_token":"r-new","token_type":"bearer"}`))
	}))
	if err := store.Save(credentials.Pair{AccessToken: "a-old", RefreshToken: "r-old"}); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	p, _ := store.Load()
	if p == nil || p.AccessToken != "a-new" || p.RefreshToken != "r-new" {
		t.Fatalf("pair after refresh: %+v", p)
	}
}

func TestRefresh_rejectedToken(t *testing.T) {
	mgr, store := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Refresh token expired"}`))
	}))
	if err := store.Save(credentials.Pair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatal(err)
	}
	err := mgr.Refresh(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestRefresh_withoutPair(t *testing.T) {
	t.Parallel()
	mgr := NewManager(api.New("http://127.0.0.1:0", nil), credentials.NewStore(t.TempDir()), nil)
	if err := mgr.Refresh(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Refresh without pair: got %v", err)
	}
}

func TestChangePassword_mismatch(t *testing.T) {
	t.Parallel()
	mgr := NewManager(api.New("http://127.0.0.1:0", nil), credentials.NewStore(t.TempDir()), nil)
	var vErr *ValidationError
	if err := mgr.ChangePassword(context.Background(), "old", "new", "other"); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}
