package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir == "" {
		t.Error("data dir should default to a per-user directory")
	}
	if cfg.DBFile != "matchups.db" {
		t.Errorf("db file = %q", cfg.DBFile)
	}
	if cfg.ImportCount != 20 {
		t.Errorf("import count = %d, want 20", cfg.ImportCount)
	}
	if cfg.DataDragonURL == "" {
		t.Error("data dragon URL should have a default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATCHUP_DATA_DIR", dir)
	t.Setenv("MATCHUP_DB_FILE", "notes.db")
	t.Setenv("MATCHUP_IMPORT_COUNT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != dir {
		t.Errorf("data dir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.ImportCount != 5 {
		t.Errorf("import count = %d, want 5", cfg.ImportCount)
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		t.Fatalf("DBPath failed: %v", err)
	}
	if dbPath != filepath.Join(dir, "notes.db") {
		t.Errorf("db path = %q", dbPath)
	}
}
