package cabinet

import (
	"context"
	"fmt"
	"strings"

	"github.com/cabinetfs/cabinet/internal/gitx"
)

// Signature identifies the author of a Commit and optionally extends the
// commit message.
type Signature struct {
	// Name and Email form the commit author.
	Name  string
	Email string

	// Message, when non-empty, is appended to the record name so the
	// commit message reads "<name>: <message>". Empty leaves the name
	// alone as the message.
	Message string
}

// Commit stages the named record's file and commits it to a git repository
// rooted at the store directory, using the binary configured by
// Options.GitPath. When the directory is not a repository yet, Commit
// initializes one and retries exactly once; any other failure is returned
// as a *CommitError without retrying.
//
// On success Commit returns the combined output of the staging and commit
// commands of the final attempt. The record file itself is not checked
// beforehand; committing a missing record fails with git's own complaint.
func (s *Store) Commit(ctx context.Context, name string, sig Signature) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if sig.Name == "" || sig.Email == "" {
		return "", fmt.Errorf("commit %q: author name and email are required", name)
	}

	client := &gitx.Client{Bin: s.opts.GitPath, Dir: s.dir}

	message := name
	if sig.Message != "" {
		message = name + ": " + sig.Message
	}

	out, err := s.commitOnce(ctx, client, name, message, sig)
	if err == nil {
		return out, nil
	}
	if !gitx.IsNotRepo(out) {
		return "", &CommitError{Output: out, Err: err}
	}

	initOut, err := client.Init(ctx)
	if err != nil {
		return "", &CommitError{Output: initOut, Err: err}
	}

	out, err = s.commitOnce(ctx, client, name, message, sig)
	if err != nil {
		return "", &CommitError{Output: out, Err: err}
	}
	return out, nil
}

// commitOnce stages one record file and commits it, returning the combined
// output of both commands even when the second fails.
func (s *Store) commitOnce(ctx context.Context, client *gitx.Client, name, message string, sig Signature) (string, error) {
	var output strings.Builder

	addOut, err := client.Add(ctx, name+recordSuffix)
	output.WriteString(addOut)
	if err != nil {
		return output.String(), err
	}

	commitOut, err := client.Commit(ctx, message, sig.Name, sig.Email)
	output.WriteString(commitOut)
	return output.String(), err
}
