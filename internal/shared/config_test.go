package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Import.BatchPath != "import.json" {
		t.Errorf("expected default batch path import.json, got %q", config.Import.BatchPath)
	}
	if config.Snapshot.Path != "dry.db" {
		t.Errorf("expected default snapshot path dry.db, got %q", config.Snapshot.Path)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("[import\nbatch_path ="), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed file")
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "worldimport.toml")
		contents := "[import]\nbatch_path = \"dump/batch.json\"\n\n[snapshot]\npath = \"dump/dry.db\"\n"
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Import.BatchPath != "dump/batch.json" {
			t.Errorf("unexpected batch path %q", config.Import.BatchPath)
		}
		if config.Snapshot.Path != "dump/dry.db" {
			t.Errorf("unexpected snapshot path %q", config.Snapshot.Path)
		}
	})
}
