package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var lsLong bool

var lsCmd = &cobra.Command{
	Use:     "ls",
	GroupID: "query",
	Short:   "List record names",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		names, err := store.Names()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing records: %v\n", err)
			os.Exit(1)
		}

		for _, name := range names {
			if !lsLong {
				fmt.Println(name)
				continue
			}

			path, err := store.Path(name)
			if err != nil {
				fmt.Println(name)
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				fmt.Println(name)
				continue
			}
			fmt.Printf("%8d  %s  %s\n", info.Size(), info.ModTime().Format("2006-01-02 15:04:05"), name)
		}
	},
}

var countCmd = &cobra.Command{
	Use:     "count",
	GroupID: "query",
	Short:   "Print the number of records",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		n, err := store.Count()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error counting records: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(n)
	},
}

func init() {
	lsCmd.Flags().BoolVarP(&lsLong, "long", "l", false, "show size and modification time")
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(countCmd)
}
