package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cabinetfs/cabinet/internal/gitx"
	"github.com/cabinetfs/cabinet/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	GroupID: "sync",
	Short:   "Show store status",
	Long: `Display the store directory, record count, total size, newest
modification time, and whether the directory is a git repository.`,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		names, err := store.Names()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing records: %v\n", err)
			os.Exit(1)
		}

		var total int64
		var newest time.Time
		for _, name := range names {
			path, err := store.Path(name)
			if err != nil {
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			total += info.Size()
			if info.ModTime().After(newest) {
				newest = info.ModTime()
			}
		}

		fmt.Printf("\n%s Store Status\n\n", ui.RenderAccent("📁"))
		fmt.Printf("Location: %s\n", store.Dir())
		fmt.Printf("Records: %d\n", len(names))
		fmt.Printf("Size: %s\n", formatSize(total))
		if !newest.IsZero() {
			fmt.Printf("Modified: %s\n", newest.Format("2006-01-02 15:04:05"))
		}

		gitBin := viper.GetString("git-bin")
		if gitBin == "" {
			gitBin = "git"
		}
		switch {
		case !gitx.Available(gitBin):
			fmt.Printf("Git: %s\n", ui.RenderWarn("binary not found"))
		default:
			if _, err := os.Stat(filepath.Join(store.Dir(), ".git")); err == nil {
				fmt.Printf("Git: repository initialized\n")
			} else {
				fmt.Printf("Git: no repository (created on first commit)\n")
			}
		}
		fmt.Println()
	},
}

// formatSize renders a byte count the way people read sizes.
func formatSize(size int64) string {
	switch {
	case size > 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	case size > 1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
