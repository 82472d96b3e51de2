package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var newFile string

var newCmd = &cobra.Command{
	Use:     "new [json]",
	GroupID: "records",
	Short:   "Create a record under a generated name",
	Long: `Write one record under a fresh UUID name and print that name,
so scripts can capture it:

  name=$(cab new '{"status": "open"}')`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}

		content, err := readDocArg(arg, newFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		name := uuid.NewString()

		store := openStore()
		if err := store.Write(name, content); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing record: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(name)
	},
}

func init() {
	newCmd.Flags().StringVarP(&newFile, "file", "f", "", "read the document from a file")
	rootCmd.AddCommand(newCmd)
}
