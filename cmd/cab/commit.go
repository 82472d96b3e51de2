package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cabinetfs/cabinet"
	"github.com/cabinetfs/cabinet/internal/ui"
)

var commitMessage string

var commitCmd = &cobra.Command{
	Use:     "commit <name>",
	GroupID: "sync",
	Short:   "Commit one record file to git",
	Long: `Stage and commit the named record's file in the store directory.
When the directory is not a git repository yet, commit initializes one
and retries once.

The author is taken from --author-name and --author-email, which can also
come from .cab.yaml or CAB_AUTHOR_NAME / CAB_AUTHOR_EMAIL. The commit
message is the record name, extended with -m text when given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		sig := cabinet.Signature{
			Name:    viper.GetString("author-name"),
			Email:   viper.GetString("author-email"),
			Message: commitMessage,
		}
		if sig.Name == "" || sig.Email == "" {
			fmt.Fprintf(os.Stderr, "Error: author name and email are required (--author-name, --author-email)\n")
			os.Exit(1)
		}

		store := openStore()
		out, err := store.Commit(cmd.Context(), name, sig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error committing record: %v\n", err)
			os.Exit(1)
		}

		if trimmed := strings.TrimSpace(out); trimmed != "" {
			fmt.Println(trimmed)
		}
		fmt.Printf("%s Committed %s\n", ui.RenderPass("✓"), ui.RenderAccent(name))
	},
}

func init() {
	commitCmd.Flags().String("author-name", "", "commit author name")
	commitCmd.Flags().String("author-email", "", "commit author email")
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "extra commit message text")

	viper.BindPFlag("author-name", commitCmd.Flags().Lookup("author-name"))
	viper.BindPFlag("author-email", commitCmd.Flags().Lookup("author-email"))

	rootCmd.AddCommand(commitCmd)
}
