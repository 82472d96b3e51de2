package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cabinetfs/cabinet/internal/ui"
)

var mvCmd = &cobra.Command{
	Use:     "mv <old> <new>",
	GroupID: "records",
	Short:   "Rename a record",
	Long: `Rename one record without rewriting its content. An existing
record under the new name is overwritten.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		if err := store.Rename(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error renaming record: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Renamed %s to %s\n", ui.RenderPass("✓"), ui.RenderAccent(args[0]), ui.RenderAccent(args[1]))
	},
}

func init() {
	rootCmd.AddCommand(mvCmd)
}
