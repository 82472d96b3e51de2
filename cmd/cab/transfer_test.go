package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestExportImport_RoundTrip(t *testing.T) {
	src := t.TempDir()
	viper.Set("dir", src)
	t.Cleanup(func() { viper.Set("dir", ".") })

	store := openStore()
	records := map[string]any{
		"user1": map[string]any{"name": "Tom", "age": float64(23)},
		"user2": map[string]any{"name": "Max", "age": float64(25)},
	}
	if err := store.WriteAll(records); err != nil {
		t.Fatalf("WriteAll() failed: %v", err)
	}

	file := filepath.Join(t.TempDir(), "snapshot.jsonl")
	exportCmd.Run(exportCmd, []string{file})

	// Import into a fresh directory and compare the stores.
	dst := t.TempDir()
	viper.Set("dir", dst)
	importCmd.Run(importCmd, []string{file})

	all, err := openStore().ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if !reflect.DeepEqual(all, records) {
		t.Errorf("imported store = %v, want %v", all, records)
	}
}
