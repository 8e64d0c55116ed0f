package credentials

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_SaveLoadClear(t *testing.T) {
	t.Parallel()
	st := NewStore(t.TempDir())

	// Absent before any save.
	p, err := st.Load()
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if p != nil {
		t.Fatalf("Load empty: expected nil, got %+v", p)
	}

	if err := st.Save(Pair{AccessToken: "acc", RefreshToken: "ref"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p, err = st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p == nil || p.AccessToken != "acc" || p.RefreshToken != "ref" {
		t.Fatalf("Load: got %+v", p)
	}

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	p, err = st.Load()
	if err != nil || p != nil {
		t.Fatalf("Load after Clear: got %+v, err %v", p, err)
	}
	// Clearing twice is fine.
	if err := st.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestStore_partialPairNeverPersisted(t *testing.T) {
	t.Parallel()
	st := NewStore(t.TempDir())

	if err := st.Save(Pair{AccessToken: "acc", RefreshToken: "ref"}); err != nil {
		t.Fatal(err)
	}
	// Saving a partial pair behaves like Clear.
	if err := st.Save(Pair{AccessToken: "only-access"}); err != nil {
		t.Fatalf("Save partial: %v", err)
	}
	p, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != nil {
		t.Fatalf("partial pair survived: %+v", p)
	}
}

func TestStore_partialFileReadsAsAbsent(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	path := filepath.Join(home, "credentials.yaml")
	if err := os.WriteFile(path, []byte("access_token: lonely\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	st := NewStore(home)
	p, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != nil {
		t.Fatalf("expected absent for partial file, got %+v", p)
	}
}

func TestStore_invalidYAML(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "credentials.yaml"), []byte("not: valid: yaml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(home).Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestStore_AccessToken(t *testing.T) {
	t.Parallel()
	st := NewStore(t.TempDir())
	if got := st.AccessToken(); got != "" {
		t.Fatalf("AccessToken empty store: got %q", got)
	}
	if err := st.Save(Pair{AccessToken: "acc", RefreshToken: "ref"}); err != nil {
		t.Fatal(err)
	}
	if got := st.AccessToken(); got != "acc" {
		t.Fatalf("AccessToken: got %q", got)
	}
}
