package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/cabinetfs/cabinet"
	"github.com/cabinetfs/cabinet/internal/ui"
)

var watchLogFile string

var watchCmd = &cobra.Command{
	Use:     "watch",
	GroupID: "sync",
	Short:   "Stream record changes (foreground)",
	Long: `Watch the store directory and print one line per record change
until interrupted. With --log-file, events are also appended to a
size-rotated log, which suits leaving a watch running for days.`,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		w, err := store.Watch()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
			os.Exit(1)
		}
		if err := w.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting watcher: %v\n", err)
			os.Exit(1)
		}
		defer w.Stop()

		var logger *log.Logger
		if watchLogFile != "" {
			logger = log.New(&lumberjack.Logger{
				Filename:   watchLogFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
			}, "", log.LstdFlags)
		}

		fmt.Printf("%s Watching %s\n", ui.RenderAccent("▶"), store.Dir())
		fmt.Printf("Press Ctrl+C to stop\n\n")

		ctx := cmd.Context()
		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nStopped.")
				return

			case event, ok := <-w.Events():
				if !ok {
					return
				}
				fmt.Printf("%s %-6s %s\n", eventMarker(event.Op), event.Op, ui.RenderAccent(event.Name))
				if logger != nil {
					logger.Printf("%s %s", event.Op, event.Name)
				}

			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
				if logger != nil {
					logger.Printf("error: %v", err)
				}
			}
		}
	},
}

func eventMarker(op cabinet.EventOp) string {
	switch op {
	case cabinet.OpCreate:
		return ui.RenderPass("+")
	case cabinet.OpDelete:
		return ui.RenderWarn("-")
	default:
		return ui.RenderAccent("~")
	}
}

func init() {
	watchCmd.Flags().StringVar(&watchLogFile, "log-file", "", "append events to a rotating log file")
	rootCmd.AddCommand(watchCmd)
}
