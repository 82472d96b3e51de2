package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cabinetfs/cabinet/internal/ui"
)

var setFile string

var setCmd = &cobra.Command{
	Use:     "set <name> [json]",
	GroupID: "records",
	Short:   "Create or replace a record",
	Long: `Write one record. The document comes from the inline argument,
from --file, or from stdin when the argument is "-" or omitted:

  cab set max '{"name": "Max", "age": 25}'
  cab set max --file max.json
  cat max.json | cab set max`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		arg := ""
		if len(args) == 2 {
			arg = args[1]
		}

		content, err := readDocArg(arg, setFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		store := openStore()
		if err := store.Write(name, content); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing record: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Wrote %s\n", ui.RenderPass("✓"), ui.RenderAccent(name))
	},
}

func init() {
	setCmd.Flags().StringVarP(&setFile, "file", "f", "", "read the document from a file")
	rootCmd.AddCommand(setCmd)
}
