package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:     "dump",
	GroupID: "query",
	Short:   "Print every record as one document keyed by name",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		all, err := store.ReadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading records: %v\n", err)
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("output")
		if err := printDocument(all, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dumpCmd.Flags().StringP("output", "o", "json", "output format (json or yaml)")
	rootCmd.AddCommand(dumpCmd)
}
