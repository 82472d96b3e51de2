package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cabinetfs/cabinet"
)

var (
	findAll   bool
	findNames bool
)

var findCmd = &cobra.Command{
	Use:     "find <path>[=<value>]",
	GroupID: "query",
	Short:   "Find records by field value",
	Long: `Scan every record and print the first one whose field at the
dotted path equals the value, or that merely has the field when no value
is given:

  cab find age=25
  cab find address.city=glasgow
  cab find name

The value is compared as JSON, so 25 matches the number 25 and "25" the
string. With --all every matching record is printed. find exits 1 when
nothing matches.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		match, err := matcher(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		store := openStore()
		format, _ := cmd.Flags().GetString("output")

		var matches []cabinet.Match
		var found bool
		if findAll {
			matches, found, err = store.FindAll(match)
		} else {
			var m cabinet.Match
			m, found, err = store.Find(match)
			matches = []cabinet.Match{m}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning records: %v\n", err)
			os.Exit(1)
		}
		if !found {
			fmt.Fprintln(os.Stderr, "No records matched.")
			os.Exit(1)
		}

		if findNames {
			for _, m := range matches {
				fmt.Println(m.Name)
			}
			return
		}

		result := make(map[string]any, len(matches))
		for _, m := range matches {
			result[m.Name] = m.Content
		}
		if err := printDocument(result, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// matcher builds a predicate from a "path" or "path=value" expression.
// The value side is decoded as JSON when possible and compared literally
// otherwise, so bare strings work without quoting.
func matcher(expr string) (cabinet.Predicate, error) {
	path, raw, hasValue := strings.Cut(expr, "=")
	if path == "" {
		return nil, fmt.Errorf("empty field path in %q", expr)
	}

	var want any
	if hasValue {
		if err := json.Unmarshal([]byte(raw), &want); err != nil {
			want = raw
		}
	}

	return func(content any, name string) bool {
		got, ok := lookupPath(content, path)
		if !ok {
			return false
		}
		if !hasValue {
			return true
		}
		return reflect.DeepEqual(got, want)
	}, nil
}

// lookupPath walks a dotted path through nested JSON objects.
func lookupPath(v any, path string) (any, bool) {
	cur := v
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func init() {
	findCmd.Flags().BoolVarP(&findAll, "all", "a", false, "print every match instead of the first")
	findCmd.Flags().BoolVar(&findNames, "names", false, "print record names only")
	findCmd.Flags().StringP("output", "o", "json", "output format (json or yaml)")
	rootCmd.AddCommand(findCmd)
}
