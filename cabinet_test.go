package cabinet

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// newTestStore builds a Store over a fresh temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return store
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "records")

	store, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("New() did not create %s: %v", dir, err)
	}
	if !info.IsDir() {
		t.Errorf("New() created %s as a non-directory", dir)
	}
	if store.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", store.Dir(), dir)
	}
}

func TestNew_ResolvesRelativeDir(t *testing.T) {
	t.Chdir(t.TempDir())

	store, err := New("records", nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if !filepath.IsAbs(store.Dir()) {
		t.Errorf("Dir() = %q, want an absolute path", store.Dir())
	}
	if filepath.Base(store.Dir()) != "records" {
		t.Errorf("Dir() = %q, want it to end in 'records'", store.Dir())
	}
	if _, err := os.Stat(store.Dir()); err != nil {
		t.Errorf("New() did not create the resolved directory: %v", err)
	}
}

func TestNew_SwallowsCreateFailure(t *testing.T) {
	// A file where the store directory should go makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	store, err := New(blocker, nil)
	if err != nil {
		t.Fatalf("New() over a broken path should still succeed, got %v", err)
	}

	// The failure surfaces on first use instead.
	if _, err := store.Count(); err == nil {
		t.Error("Count() over a broken path should fail, got nil")
	}
	if err := store.Write("a", 1); err == nil {
		t.Error("Write() over a broken path should fail, got nil")
	}
}

func TestStore_RejectsEscapingNames(t *testing.T) {
	store := newTestStore(t)

	names := []string{"..", "../escape", "a/../../b", "nested/..suffix"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Read(name); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Read(%q) error = %v, want ErrInvalidName", name, err)
			}
			if err := store.Write(name, "x"); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Write(%q) error = %v, want ErrInvalidName", name, err)
			}
			if err := store.Delete(name); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Delete(%q) error = %v, want ErrInvalidName", name, err)
			}
			if err := store.Rename(name, "ok"); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Rename(%q, ok) error = %v, want ErrInvalidName", name, err)
			}
			if err := store.Rename("ok", name); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Rename(ok, %q) error = %v, want ErrInvalidName", name, err)
			}
			if _, err := store.Path(name); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Path(%q) error = %v, want ErrInvalidName", name, err)
			}
			if _, err := store.Has(name); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Has(%q) error = %v, want ErrInvalidName", name, err)
			}
		})
	}

	// Rejection happens before any filesystem access, so nothing may have
	// leaked outside the store directory.
	parent := filepath.Dir(store.Dir())
	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatalf("ReadDir(%s) failed: %v", parent, err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".json") {
			t.Errorf("stray file %s escaped the store directory", entry.Name())
		}
	}
}

func TestStore_Has(t *testing.T) {
	store := newTestStore(t)

	ok, err := store.Has("missing")
	if err != nil {
		t.Fatalf("Has() failed: %v", err)
	}
	if ok {
		t.Error("Has(missing) = true, want false")
	}

	if err := store.Write("present", map[string]any{"a": float64(1)}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	ok, err = store.Has("present")
	if err != nil {
		t.Fatalf("Has() failed: %v", err)
	}
	if !ok {
		t.Error("Has(present) = false, want true")
	}
}

func TestStore_Path(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Path("user1")
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}

	want := filepath.Join(store.Dir(), "user1.json")
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Indent != "  " {
		t.Errorf("DefaultOptions() Indent = %q, want two spaces", opts.Indent)
	}
	if opts.GitPath == "" {
		t.Error("DefaultOptions() GitPath is empty, want a platform default")
	}
	if opts.Encoding != nil {
		t.Errorf("DefaultOptions() Encoding = %v, want nil for UTF-8", opts.Encoding)
	}
	if opts.Transform != nil {
		t.Error("DefaultOptions() Transform is set, want nil")
	}
}

func TestOptions_WithDefaults(t *testing.T) {
	var nilOpts *Options
	merged := nilOpts.withDefaults()
	if merged.Indent != "  " {
		t.Errorf("nil options Indent = %q, want two spaces", merged.Indent)
	}

	custom := &Options{Indent: "\t", GitPath: "/opt/git/bin/git"}
	merged = custom.withDefaults()
	if merged.Indent != "\t" {
		t.Errorf("custom Indent = %q, want tab", merged.Indent)
	}
	if merged.GitPath != "/opt/git/bin/git" {
		t.Errorf("custom GitPath = %q, want /opt/git/bin/git", merged.GitPath)
	}

	// Zero fields still pick up their defaults.
	partial := &Options{GitPath: "/opt/git/bin/git"}
	merged = partial.withDefaults()
	if merged.Indent != "  " {
		t.Errorf("partial options Indent = %q, want two spaces", merged.Indent)
	}
}

func TestDefaultGitPath(t *testing.T) {
	got := defaultGitPath()
	if got == "" {
		t.Fatal("defaultGitPath() returned empty string")
	}
	if runtime.GOOS == "linux" && got != "/usr/bin/git" {
		t.Errorf("defaultGitPath() = %q on linux, want /usr/bin/git", got)
	}
}
