package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:     "get <name>",
	GroupID: "records",
	Short:   "Print one record",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		content, err := store.Read(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("output")
		if err := printDocument(content, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	getCmd.Flags().StringP("output", "o", "json", "output format (json or yaml)")
	rootCmd.AddCommand(getCmd)
}
