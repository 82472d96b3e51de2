package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cabinetfs/cabinet"
	"github.com/cabinetfs/cabinet/internal/ui"
)

const appVersion = "0.3.0"

var rootCmd = &cobra.Command{
	Use:     "cab",
	Version: appVersion,
	Short:   "Flat-directory JSON record store",
	Long: `cab manages a directory of JSON records, one pretty-printed
<name>.json file per record.

There is no index and no daemon: every listing and query is a fresh scan
of the directory, so the answer always matches what is on disk. The store
directory can double as a git repository, and 'cab commit' records one
file at a time with an explicit author, initializing the repository on
first use.

Settings come from flags, CAB_* environment variables, or a .cab.yaml
file in the working directory or home directory, in that order.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("no-color") {
			ui.Disable()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("dir", "d", ".", "store directory")
	rootCmd.PersistentFlags().String("git-bin", "", "git binary used by commit (default: platform git)")
	rootCmd.PersistentFlags().Int("indent", 2, "spaces per indentation level in record files")
	rootCmd.PersistentFlags().String("encoding", "", "text encoding of record files (default: utf-8)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable styled output")

	viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("git-bin", rootCmd.PersistentFlags().Lookup("git-bin"))
	viper.BindPFlag("indent", rootCmd.PersistentFlags().Lookup("indent"))
	viper.BindPFlag("encoding", rootCmd.PersistentFlags().Lookup("encoding"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.AddGroup(
		&cobra.Group{ID: "records", Title: "Record Commands:"},
		&cobra.Group{ID: "query", Title: "Query Commands:"},
		&cobra.Group{ID: "sync", Title: "Sync Commands:"},
	)
}

// initConfig loads .cab.yaml and CAB_* environment variables. A missing
// config file is fine; a broken one gets a warning rather than a hard
// stop so the store stays reachable.
func initConfig() {
	viper.SetConfigName(".cab")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("CAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: config file: %v\n", err)
		}
	}
}

// openStore builds the Store from the effective settings. Commands call
// it after flag parsing, so viper already has the merged view.
func openStore() *cabinet.Store {
	enc, err := lookupEncoding(viper.GetString("encoding"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := &cabinet.Options{
		Encoding: enc,
		Indent:   strings.Repeat(" ", viper.GetInt("indent")),
		GitPath:  viper.GetString("git-bin"),
	}

	store, err := cabinet.New(viper.GetString("dir"), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	return store
}
