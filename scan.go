package cabinet

import (
	"fmt"
	"os"
	"strings"
)

// VisitFunc is called by ForEach with each record's content and name.
// Returning a non-nil error aborts the scan and propagates the error.
type VisitFunc func(content any, name string) error

// ProjectFunc maps one record to a result for Map. Returning a non-nil
// error aborts the scan.
type ProjectFunc func(content any, name string) (any, error)

// Predicate reports whether a record matches for Find and FindAll.
type Predicate func(content any, name string) bool

// Match is one record selected by Find or FindAll.
type Match struct {
	// Name is the record's name.
	Name string

	// Content is the record's decoded content.
	Content any
}

// Count returns the number of records in the store.
func (s *Store) Count() (int, error) {
	names, err := s.scanNames()
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

// Names returns the names of all records, in the lexical order of the
// underlying directory listing. An empty store yields an empty slice.
func (s *Store) Names() ([]string, error) {
	return s.scanNames()
}

// ReadAll reads every record and returns content keyed by name. A single
// unreadable or malformed record fails the whole call.
func (s *Store) ReadAll() (map[string]any, error) {
	names, err := s.scanNames()
	if err != nil {
		return nil, err
	}

	all := make(map[string]any, len(names))
	for _, name := range names {
		content, err := s.readRecord(name)
		if err != nil {
			return nil, err
		}
		all[name] = content
	}
	return all, nil
}

// ForEach reads every record in name order and calls visit with its
// content and name. The first error, whether from reading or from visit,
// aborts the scan.
func (s *Store) ForEach(visit VisitFunc) error {
	names, err := s.scanNames()
	if err != nil {
		return err
	}

	for _, name := range names {
		content, err := s.readRecord(name)
		if err != nil {
			return err
		}
		if err := visit(content, name); err != nil {
			return err
		}
	}
	return nil
}

// Map reads every record in name order and collects project's result for
// each. The returned slice parallels the order Names reports.
func (s *Store) Map(project ProjectFunc) ([]any, error) {
	names, err := s.scanNames()
	if err != nil {
		return nil, err
	}

	results := make([]any, 0, len(names))
	for _, name := range names {
		content, err := s.readRecord(name)
		if err != nil {
			return nil, err
		}
		result, err := project(content, name)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Find returns the first record, in name order, that match accepts. The
// second return value reports whether any record matched; it distinguishes
// "nothing matched" from a match whose content is the zero value. The scan
// stops at the first match.
func (s *Store) Find(match Predicate) (Match, bool, error) {
	names, err := s.scanNames()
	if err != nil {
		return Match{}, false, err
	}

	for _, name := range names {
		content, err := s.readRecord(name)
		if err != nil {
			return Match{}, false, err
		}
		if match(content, name) {
			return Match{Name: name, Content: content}, true, nil
		}
	}
	return Match{}, false, nil
}

// FindAll returns every record that match accepts, in name order. The
// second return value reports whether there was at least one match, so that
// no matches and a legitimately empty result are distinguishable the same
// way they are for Find.
func (s *Store) FindAll(match Predicate) ([]Match, bool, error) {
	names, err := s.scanNames()
	if err != nil {
		return nil, false, err
	}

	var matches []Match
	for _, name := range names {
		content, err := s.readRecord(name)
		if err != nil {
			return nil, false, err
		}
		if match(content, name) {
			matches = append(matches, Match{Name: name, Content: content})
		}
	}
	return matches, len(matches) > 0, nil
}

// scanNames lists the store directory and returns the record names in it.
// Directories and files without the .json suffix are skipped. os.ReadDir
// sorts entries, so every scan-based operation sees records in lexical
// name order.
func (s *Store) scanNames() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read store directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), recordSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), recordSuffix))
	}
	return names, nil
}
