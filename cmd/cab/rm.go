package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cabinetfs/cabinet/internal/ui"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:     "rm <name>",
	GroupID: "records",
	Short:   "Delete a record",
	Long: `Delete one record. When run interactively, rm asks before
deleting; --force skips the question. Non-interactive runs never prompt.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		if !rmForce && term.IsTerminal(int(os.Stdin.Fd())) {
			confirmed := false
			prompt := huh.NewConfirm().
				Title(fmt.Sprintf("Delete record %q?", name)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed)
			if err := prompt.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !confirmed {
				fmt.Println("Kept.")
				return
			}
		}

		store := openStore()
		if err := store.Delete(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting record: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Deleted %s\n", ui.RenderPass("✓"), ui.RenderAccent(name))
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "delete without asking")
	rootCmd.AddCommand(rmCmd)
}
