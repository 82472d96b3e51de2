package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"gopkg.in/yaml.v3"
)

// printDocument writes v to stdout in the requested format. JSON is the
// default and is always pretty-printed.
func printDocument(v any, format string) error {
	switch format {
	case "", "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}

// readDocArg resolves the JSON document for write-style commands: a --file
// path when given, otherwise the inline argument, with "-" or an absent
// argument reading stdin.
func readDocArg(arg, file string) (any, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case file != "":
		data, err = os.ReadFile(file)
	case arg == "" || arg == "-":
		data, err = io.ReadAll(os.Stdin)
	default:
		data = []byte(arg)
	}
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return v, nil
}

// lookupEncoding resolves a user-supplied encoding name. An empty name or
// any UTF-8 spelling selects the store default, plain UTF-8. Names outside
// the common aliases fall through to the IANA registry.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return nil, nil
	case "utf16", "utf-16", "utf16le", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf16be", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}
