package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/config"
	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/internal/credentials"
)

// seedSession stores a token pair the fake servers accept.
func seedSession(t *testing.T, home string) {
	t.Helper()
	if err := credentials.NewStore(home).Save(credentials.Pair{AccessToken: "a1", RefreshToken: "r1"}); err != nil {
		t.Fatal(err)
	}
}

func TestNewRootCmd_hasSubcommands(t *testing.T) {
	root := NewRootCmd("test")
	if root == nil {
		t.Fatal("NewRootCmd returned nil")
	}
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"login", "register", "logout", "whoami", "change-password", "project", "feature", "testcase", "generate", "jira", "ai", "knowledge", "config"} {
		if !names[want] {
			t.Errorf("expected subcommand %q", want)
		}
	}
}

func TestNewRootCmd_versionFlag(t *testing.T) {
	root := NewRootCmd("1.2.3")
	if root.Version != "1.2.3" {
		t.Errorf("Version: got %q", root.Version)
	}
}

func TestNewRootCmd_hasHomeFlag(t *testing.T) {
	root := NewRootCmd("")
	for _, name := range []string{"home", "api-url", "env-file", "verbose"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s persistent flag", name)
		}
	}
}

// execute runs the command tree against a test server and a temp home.
func execute(t *testing.T, srvURL, home string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--home", home, "--api-url", srvURL}, args...))
	err := root.Execute()
	return buf.String(), err
}

func authHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"a1","refresh_token":"r1","user":{"id":"u1","email":"qa@example.com","full_name":"QA Person","role":"qa"}}`))
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer a1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","email":"qa@example.com","full_name":"QA Person","role":"qa"}`))
	})
	return mux
}

func TestLoginThenWhoami(t *testing.T) {
	srv := httptest.NewServer(authHandler(t))
	defer srv.Close()
	home := t.TempDir()

	out, err := execute(t, srv.URL, home, "login", "--email", "qa@example.com", "--password", "pw")
	if err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}
	if !strings.Contains(out, "qa@example.com") {
		t.Errorf("login output: %s", out)
	}

	out, err = execute(t, srv.URL, home, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v\n%s", err, out)
	}
	if !strings.Contains(out, "qa@example.com") || !strings.Contains(out, "Role:  qa") {
		t.Errorf("whoami output: %s", out)
	}
}

func TestWhoami_notLoggedIn(t *testing.T) {
	srv := httptest.NewServer(authHandler(t))
	defer srv.Close()

	_, err := execute(t, srv.URL, t.TempDir(), "whoami")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected not-logged-in error, got %v", err)
	}
}

func TestLogout_clearsSession(t *testing.T) {
	srv := httptest.NewServer(authHandler(t))
	defer srv.Close()
	home := t.TempDir()

	if _, err := execute(t, srv.URL, home, "login", "--email", "qa@example.com", "--password", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, srv.URL, home, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := execute(t, srv.URL, home, "whoami"); err == nil {
		t.Fatal("whoami after logout should fail")
	}
}

func TestGenerateEpic_printsReport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","email":"qa@example.com","role":"qa"}`))
	})
	mux.HandleFunc("/api/v1/stories/epic-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"epic-1","name":"Checkout","jira_type":"epic","children":[
			{"id":"s1","jira_key":"PROJ-1","name":"Card payment","jira_type":"story","test_case_count":0},
			{"id":"s2","jira_key":"PROJ-2","name":"Saved cards","jira_type":"story","test_case_count":2}
		]}`))
	})
	mux.HandleFunc("/api/v1/features/s1/generate-test-cases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"tc1","title":"t","priority":"high","test_type":"functional","status":"draft"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	home := t.TempDir()
	// Seed a valid session so requireSession passes.
	seedSession(t, home)

	out, err := execute(t, srv.URL, home, "generate", "epic", "epic-1")
	if err != nil {
		t.Fatalf("generate epic: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2 total, 1 processed, 1 test cases generated") {
		t.Errorf("report header: %s", out)
	}
	if !strings.Contains(out, "already has test cases") {
		t.Errorf("skip reason missing: %s", out)
	}
}

func TestConfigSetURL_persists(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	home := t.TempDir()

	if _, err := execute(t, srv.URL, home, "config", "set-url", "https://testgen.example.com"); err != nil {
		t.Fatalf("config set-url: %v", err)
	}
	s, err := config.LoadSettings(home)
	if err != nil {
		t.Fatal(err)
	}
	if s.APIURL != "https://testgen.example.com" {
		t.Errorf("persisted APIURL: %q", s.APIURL)
	}

	out, err := execute(t, srv.URL, home, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, home) || !strings.Contains(out, srv.URL) {
		t.Errorf("config show output: %s", out)
	}
}

func TestKnowledgeUpload_sendsFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","email":"qa@example.com","role":"admin"}`))
	})
	mux.HandleFunc("/api/v1/projects/p1/knowledge-batches", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		_, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		if hdr.Filename != "history.csv" {
			t.Errorf("filename: %q", hdr.Filename)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b1","project_id":"p1","file_name":"history.csv","file_type":"csv","status":"completed","row_count":3,"processed_count":3,"error_count":0}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	home := t.TempDir()
	seedSession(t, home)
	path := filepath.Join(t.TempDir(), "history.csv")
	if err := os.WriteFile(path, []byte("title\nlogin"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, srv.URL, home, "knowledge", "upload", "--project", "p1", path)
	if err != nil {
		t.Fatalf("knowledge upload: %v\n%s", err, out)
	}
	if !strings.Contains(out, "batch b1") || !strings.Contains(out, "3/3 rows processed") {
		t.Errorf("upload output: %s", out)
	}
}
