// Package cabinet implements a flat-directory JSON record store.
//
// A Store is bound to one directory. Each record is a single JSON document
// persisted as <name>.json inside that directory; the name-to-file mapping is
// the only index there is. Every enumeration and query operation performs a
// full directory scan and re-reads the matching files, so results always
// reflect the on-disk state and cost O(n) in the number of records. There is
// no in-memory cache and no locking; nothing protects a scan from other
// processes mutating the directory under it.
//
// Write creates or replaces a record in place, with no temp-file-and-rename
// guarantee. Rename changes a record's name and Delete removes it. Commit
// hands a single record's file to the git binary, initializing a repository
// in the store directory on first use.
//
// Files whose names do not end in .json are invisible to the store.
package cabinet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// recordSuffix is the extension every record file carries.
const recordSuffix = ".json"

// Store is a JSON record store over a single flat directory.
//
// A Store holds only its resolved directory path and an immutable Options
// value; it is cheap to construct and has no close semantics. Methods are
// safe for concurrent use in the sense that they share no mutable state,
// but concurrent writers to the same record race at the filesystem level.
type Store struct {
	// dir is the absolute path of the store directory.
	dir string

	// opts is the merged configuration, immutable after construction.
	opts Options
}

// New creates a Store bound to dir, creating the directory if needed.
//
// opts may be nil, in which case DefaultOptions is used; zero fields of a
// non-nil opts are filled from the defaults.
//
// Directory creation failures are deliberately swallowed: constructing a
// Store over an unwritable or otherwise broken path succeeds, and the
// failure surfaces on the first operation that touches the directory. The
// only construction error is a failure to resolve dir to an absolute path.
func New(dir string, opts *Options) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve store directory: %w", err)
	}

	// Best effort; see the function comment.
	_ = os.MkdirAll(abs, 0o755)

	return &Store{
		dir:  abs,
		opts: opts.withDefaults(),
	}, nil
}

// Dir returns the absolute path of the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path a record with the given name is stored at.
// The record need not exist.
func (s *Store) Path(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return s.recordPath(name), nil
}

// Has reports whether a record with the given name exists.
func (s *Store) Has(name string) (bool, error) {
	if err := checkName(name); err != nil {
		return false, err
	}

	if _, err := os.Stat(s.recordPath(name)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// recordPath builds the file path for a validated record name.
func (s *Store) recordPath(name string) string {
	return filepath.Join(s.dir, name+recordSuffix)
}

// checkName rejects names that could escape the store directory. It is
// called with every caller-supplied name before any filesystem access;
// names derived from directory listings are not re-checked.
func checkName(name string) error {
	if strings.Contains(name, "..") {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}
