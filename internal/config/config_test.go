package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	home := t.TempDir()
	if err := EnsureConfigExists(home); err != nil {
		t.Fatalf("ensure config failed: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Endpoint == "" {
		t.Fatal("expected default endpoint to be set")
	}
	if cfg.PinnedNotes == nil {
		t.Fatal("expected pinned notes slice to be initialized")
	}
	if cfg.HasToken() {
		t.Fatal("expected no token in a fresh config")
	}
}

func TestSaveRoundTrips(t *testing.T) {
	home := t.TempDir()
	if err := EnsureConfigExists(home); err != nil {
		t.Fatalf("ensure config failed: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := cfg.ChangeToken("tok-123", "user@example.com"); err != nil {
		t.Fatalf("change token failed: %v", err)
	}
	if err := cfg.SetPinnedNotes([]string{"note_1", "note_2"}); err != nil {
		t.Fatalf("set pinned failed: %v", err)
	}

	reloaded, err := Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if reloaded.Token != "tok-123" {
		t.Fatalf("expected token to survive reload, got %q", reloaded.Token)
	}
	if reloaded.Email != "user@example.com" {
		t.Fatalf("expected email to survive reload, got %q", reloaded.Email)
	}
	if len(reloaded.PinnedNotes) != 2 || reloaded.PinnedNotes[0] != "note_1" {
		t.Fatalf("expected pinned notes to survive reload, got %v", reloaded.PinnedNotes)
	}
}

func TestClearSessionWipesTokenAndPins(t *testing.T) {
	home := t.TempDir()
	if err := EnsureConfigExists(home); err != nil {
		t.Fatalf("ensure config failed: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := cfg.ChangeToken("tok", "a@b.c"); err != nil {
		t.Fatalf("change token failed: %v", err)
	}
	if err := cfg.SetPinnedNotes([]string{"note_1"}); err != nil {
		t.Fatalf("set pinned failed: %v", err)
	}
	if err := cfg.ClearSession(); err != nil {
		t.Fatalf("clear session failed: %v", err)
	}

	reloaded, err := Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.HasToken() || reloaded.Email != "" || len(reloaded.PinnedNotes) != 0 {
		t.Fatalf("expected empty session after clear, got %+v", reloaded)
	}
}

func TestEndpointTrailingSlashIsTrimmed(t *testing.T) {
	home := t.TempDir()
	path := GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("endpoint: https://pad.example.com/\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if strings.HasSuffix(cfg.Endpoint, "/") {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Endpoint)
	}
}
