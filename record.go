package cabinet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// Read returns the content of the named record. JSON objects decode to
// map[string]any, arrays to []any, and so on per encoding/json defaults;
// use ReadInto to decode into a concrete type.
//
// Read returns ErrNotFound (wrapped with the name) when the record does not
// exist and a *ParseError when its file cannot be decoded.
func (s *Store) Read(name string) (any, error) {
	var content any
	if err := s.ReadInto(name, &content); err != nil {
		return nil, err
	}
	return content, nil
}

// ReadInto reads the named record into v, which must be a non-nil pointer
// as for json.Unmarshal.
func (s *Store) ReadInto(name string, v any) error {
	if err := checkName(name); err != nil {
		return err
	}
	return s.readRecordInto(name, v)
}

// Write creates or replaces the named record with content. The file is
// rewritten in place as a single pretty-printed JSON document; there is no
// temp-file-and-rename step, so a crash mid-write can leave a truncated
// file behind.
func (s *Store) Write(name string, content any) error {
	if err := checkName(name); err != nil {
		return err
	}

	data, err := s.encode(content)
	if err != nil {
		return fmt.Errorf("record %q: %w", name, err)
	}

	if err := os.WriteFile(s.recordPath(name), data, 0o644); err != nil {
		return fmt.Errorf("record %q: %w", name, err)
	}
	return nil
}

// Delete removes the named record, returning ErrNotFound when it does not
// exist.
func (s *Store) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}

	if err := os.Remove(s.recordPath(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return err
	}
	return nil
}

// Rename moves the record oldName to newName without re-serializing its
// content. An existing record under newName is overwritten. Rename returns
// ErrNotFound when oldName does not exist.
func (s *Store) Rename(oldName, newName string) error {
	if err := checkName(oldName); err != nil {
		return err
	}
	if err := checkName(newName); err != nil {
		return err
	}

	if err := os.Rename(s.recordPath(oldName), s.recordPath(newName)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", oldName, ErrNotFound)
		}
		return err
	}
	return nil
}

// WriteAll writes every entry of contentByName as a record, in ascending
// name order. It stops at the first failure, so records sorting before the
// offending name are already on disk when an error comes back.
func (s *Store) WriteAll(contentByName map[string]any) error {
	names := make([]string, 0, len(contentByName))
	for name := range contentByName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Write(name, contentByName[name]); err != nil {
			return err
		}
	}
	return nil
}

// readRecordInto loads and decodes one record file. Callers pass either a
// caller-validated name or a name obtained from a directory listing.
func (s *Store) readRecordInto(name string, v any) error {
	data, err := os.ReadFile(s.recordPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return err
	}

	if err := s.decode(data, v); err != nil {
		return &ParseError{Name: name, Err: err}
	}
	return nil
}

// readRecord is readRecordInto for untyped content.
func (s *Store) readRecord(name string) (any, error) {
	var content any
	if err := s.readRecordInto(name, &content); err != nil {
		return nil, err
	}
	return content, nil
}

// encode serializes content to the on-disk byte form: transform, marshal
// with indentation, then apply the store encoding.
func (s *Store) encode(content any) ([]byte, error) {
	if s.opts.Transform != nil {
		content = s.opts.Transform(content)
	}

	data, err := json.MarshalIndent(content, "", s.opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	if s.opts.Encoding != nil {
		data, err = s.opts.Encoding.NewEncoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
	}
	return data, nil
}

// decode reverses encode, minus the transform.
func (s *Store) decode(data []byte, v any) error {
	if s.opts.Encoding != nil {
		var err error
		data, err = s.opts.Encoding.NewDecoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
	}
	return json.Unmarshal(data, v)
}
