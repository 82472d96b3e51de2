package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cabinetfs/cabinet/internal/ui"
)

// recordLine is the JSON Lines envelope used by export and import.
type recordLine struct {
	Name    string `json:"name"`
	Content any    `json:"content"`
}

var exportCmd = &cobra.Command{
	Use:     "export [file]",
	GroupID: "sync",
	Short:   "Write all records as JSON Lines",
	Long: `Write every record as one line of the form
{"name": ..., "content": ...}, in record name order, to stdout or to the
given file. The output round-trips through 'cab import'.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		names, err := store.Names()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing records: %v\n", err)
			os.Exit(1)
		}

		var w io.Writer = os.Stdout
		var f *os.File
		if len(args) == 1 && args[0] != "-" {
			f, err = os.Create(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", args[0], err)
				os.Exit(1)
			}
			w = f
		}

		enc := json.NewEncoder(w)
		for _, name := range names {
			content, err := store.Read(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
				os.Exit(1)
			}
			if err := enc.Encode(recordLine{Name: name, Content: content}); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
				os.Exit(1)
			}
		}

		if f != nil {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("%s Exported %d records to %s\n", ui.RenderPass("✓"), len(names), args[0])
		}
	},
}

var importReplace bool

var importCmd = &cobra.Command{
	Use:     "import [file]",
	GroupID: "sync",
	Short:   "Load records from JSON Lines",
	Long: `Read {"name": ..., "content": ...} lines from stdin or the given
file and write each as a record. Existing records are overwritten;
--replace also deletes records absent from the input, making the store
mirror it exactly.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var r io.Reader = os.Stdin
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", args[0], err)
				os.Exit(1)
			}
			defer f.Close()
			r = f
		}

		byName := make(map[string]any)
		dec := json.NewDecoder(r)
		for n := 1; ; n++ {
			var rec recordLine
			if err := dec.Decode(&rec); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				fmt.Fprintf(os.Stderr, "Error: record %d: %v\n", n, err)
				os.Exit(1)
			}
			if rec.Name == "" {
				fmt.Fprintf(os.Stderr, "Error: record %d: missing name\n", n)
				os.Exit(1)
			}
			byName[rec.Name] = rec.Content
		}

		store := openStore()

		if importReplace {
			names, err := store.Names()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error listing records: %v\n", err)
				os.Exit(1)
			}
			for _, name := range names {
				if _, keep := byName[name]; keep {
					continue
				}
				if err := store.Delete(name); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting record: %v\n", err)
					os.Exit(1)
				}
			}
		}

		if err := store.WriteAll(byName); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing records: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Imported %d records\n", ui.RenderPass("✓"), len(byName))
	},
}

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "delete records absent from the input")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
