package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestCommandRegistration(t *testing.T) {
	want := []string{
		"get", "set", "new", "ls", "count", "dump", "rm", "mv",
		"find", "commit", "export", "import", "status", "watch",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestCommandsCarryGroups(t *testing.T) {
	groups := map[string]bool{"records": true, "query": true, "sync": true}

	named := []string{
		"get", "set", "new", "ls", "count", "dump", "rm", "mv",
		"find", "commit", "export", "import", "status", "watch",
	}
	wantGroup := make(map[string]bool, len(named))
	for _, name := range named {
		wantGroup[name] = true
	}

	for _, cmd := range rootCmd.Commands() {
		if !wantGroup[cmd.Name()] {
			continue
		}
		if !groups[cmd.GroupID] {
			t.Errorf("command %q has group %q, want one of records/query/sync", cmd.Name(), cmd.GroupID)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"dir", "git-bin", "indent", "encoding", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not defined", name)
		}
	}
}

func TestOpenStore_HonorsSettings(t *testing.T) {
	dir := t.TempDir()
	viper.Set("dir", dir)
	viper.Set("indent", 4)
	t.Cleanup(func() {
		viper.Set("dir", ".")
		viper.Set("indent", 2)
	})

	store := openStore()
	if store.Dir() != dir {
		t.Errorf("openStore() dir = %q, want %q", store.Dir(), dir)
	}

	if err := store.Write("doc", map[string]any{"a": float64(1)}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "doc.json"))
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	want := "{\n    \"a\": 1\n}"
	if string(data) != want {
		t.Errorf("written bytes = %q, want four-space indentation", data)
	}
}
