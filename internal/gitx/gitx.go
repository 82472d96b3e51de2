// Package gitx shells out to the git binary. It is a thin wrapper around
// os/exec that captures combined output, which is where git reports both
// results and failure reasons.
package gitx

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client invokes one git binary in one working directory.
type Client struct {
	// Bin is the git executable, either a bare name resolved via PATH or
	// a direct path.
	Bin string

	// Dir is the working directory for every invocation.
	Dir string
}

// Run invokes git with args and returns its combined stdout and stderr.
// Output is returned for failed invocations too, so callers can inspect
// git's reason alongside the error.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.Bin, args...)
	cmd.Dir = c.Dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(output), nil
}

// Init creates a repository in the client's directory.
func (c *Client) Init(ctx context.Context) (string, error) {
	return c.Run(ctx, "init")
}

// Add stages a single path.
func (c *Client) Add(ctx context.Context, path string) (string, error) {
	return c.Run(ctx, "add", path)
}

// Commit records staged changes. The author identity is passed with -c on
// every invocation so commits succeed in environments that have no global
// git configuration.
func (c *Client) Commit(ctx context.Context, message, name, email string) (string, error) {
	args := []string{
		"-c", "user.name=" + name,
		"-c", "user.email=" + email,
		"commit",
		"-m", message,
		"--author", fmt.Sprintf("%s <%s>", name, email),
	}
	return c.Run(ctx, args...)
}

// IsNotRepo reports whether output from a failed invocation says the
// working directory is not inside a git repository. Matching on the
// message text is how the condition is distinguished from other failures,
// since git exits with a generic status.
func IsNotRepo(output string) bool {
	return strings.Contains(output, "not a git repository")
}

// Available reports whether bin resolves to an executable. exec.LookPath
// handles both bare names and direct paths.
func Available(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
