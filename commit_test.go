package cabinet

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cabinetfs/cabinet/internal/gitx"
)

// skipWithoutGit skips tests that exec the real git binary.
func skipWithoutGit(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("git")
	if err != nil {
		t.Skip("git not installed")
	}
	return path
}

func newGitStore(t *testing.T) *Store {
	t.Helper()
	gitBin := skipWithoutGit(t)
	store, err := New(t.TempDir(), &Options{GitPath: gitBin})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return store
}

func TestStore_Commit_InitializesRepository(t *testing.T) {
	store := newGitStore(t)

	if err := store.Write("user1", map[string]any{"name": "Tom"}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	sig := Signature{Name: "Test User", Email: "test@example.com"}
	out, err := store.Commit(context.Background(), "user1", sig)
	if err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}
	if !strings.Contains(out, "user1") {
		t.Errorf("Commit() output %q does not mention the record", out)
	}

	// The fresh directory was not a repository, so Commit must have
	// initialized one.
	if _, err := os.Stat(filepath.Join(store.Dir(), ".git")); err != nil {
		t.Errorf(".git missing after auto-init: %v", err)
	}
}

func TestStore_Commit_SecondCommitReusesRepository(t *testing.T) {
	store := newGitStore(t)
	ctx := context.Background()
	sig := Signature{Name: "Test User", Email: "test@example.com"}

	if err := store.Write("doc", map[string]any{"rev": float64(1)}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if _, err := store.Commit(ctx, "doc", sig); err != nil {
		t.Fatalf("First Commit() failed: %v", err)
	}

	if err := store.Write("doc", map[string]any{"rev": float64(2)}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if _, err := store.Commit(ctx, "doc", sig); err != nil {
		t.Fatalf("Second Commit() failed: %v", err)
	}

	client := &gitx.Client{Bin: store.opts.GitPath, Dir: store.Dir()}
	out, err := client.Run(ctx, "rev-list", "--count", "HEAD")
	if err != nil {
		t.Fatalf("rev-list failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != "2" {
		t.Errorf("repository has %s commits, want 2", got)
	}
}

func TestStore_Commit_MessageAndAuthor(t *testing.T) {
	store := newGitStore(t)
	ctx := context.Background()

	if err := store.Write("user1", map[string]any{"name": "Tom"}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	sig := Signature{Name: "Tom Tester", Email: "tom@example.com", Message: "initial import"}
	if _, err := store.Commit(ctx, "user1", sig); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	client := &gitx.Client{Bin: store.opts.GitPath, Dir: store.Dir()}
	out, err := client.Run(ctx, "log", "-1", "--pretty=format:%s|%an|%ae")
	if err != nil {
		t.Fatalf("git log failed: %v", err)
	}

	want := "user1: initial import|Tom Tester|tom@example.com"
	if strings.TrimSpace(out) != want {
		t.Errorf("last commit = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestStore_Commit_DefaultMessageIsName(t *testing.T) {
	store := newGitStore(t)
	ctx := context.Background()

	if err := store.Write("user2", map[string]any{"name": "Max"}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	sig := Signature{Name: "Test User", Email: "test@example.com"}
	if _, err := store.Commit(ctx, "user2", sig); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	client := &gitx.Client{Bin: store.opts.GitPath, Dir: store.Dir()}
	out, err := client.Run(ctx, "log", "-1", "--pretty=format:%s")
	if err != nil {
		t.Fatalf("git log failed: %v", err)
	}
	if strings.TrimSpace(out) != "user2" {
		t.Errorf("commit subject = %q, want the record name", strings.TrimSpace(out))
	}
}

func TestStore_Commit_InvalidName(t *testing.T) {
	// Validation runs before anything touches git, so no binary is
	// needed.
	store, err := New(t.TempDir(), &Options{GitPath: "/nonexistent/git"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	sig := Signature{Name: "Test User", Email: "test@example.com"}
	if _, err := store.Commit(context.Background(), "../escape", sig); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Commit(../escape) error = %v, want ErrInvalidName", err)
	}
}

func TestStore_Commit_RequiresAuthor(t *testing.T) {
	store, err := New(t.TempDir(), &Options{GitPath: "/nonexistent/git"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = store.Commit(context.Background(), "doc", Signature{})
	if err == nil {
		t.Fatal("Commit() without author succeeded, want error")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("Commit() error = %v, want it to name the missing author", err)
	}
}

func TestStore_Commit_BadBinary(t *testing.T) {
	store, err := New(t.TempDir(), &Options{GitPath: "/nonexistent/git"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := store.Write("doc", "x"); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	sig := Signature{Name: "Test User", Email: "test@example.com"}
	_, err = store.Commit(context.Background(), "doc", sig)

	var commitErr *CommitError
	if !errors.As(err, &commitErr) {
		t.Fatalf("Commit() error = %v, want *CommitError", err)
	}
}
