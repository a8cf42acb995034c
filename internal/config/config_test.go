package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.WebSocket.Address != ":8080" {
		t.Errorf("websocket address = %q, want :8080", cfg.Server.WebSocket.Address)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Game.OpeningHandSize != 5 {
		t.Errorf("opening hand size = %d, want 5", cfg.Game.OpeningHandSize)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  websocket:
    address: ":9090"
logging:
  level: debug
  format: console
game:
  opening_hand_size: 7
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.WebSocket.Address != ":9090" {
		t.Errorf("websocket address = %q, want :9090", cfg.Server.WebSocket.Address)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Game.OpeningHandSize != 7 {
		t.Errorf("opening hand size = %d, want 7", cfg.Game.OpeningHandSize)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load with missing file failed: %v", err)
	}
	if cfg.Game.OpeningHandSize != 5 {
		t.Errorf("opening hand size = %d, want default 5", cfg.Game.OpeningHandSize)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected malformed config to fail")
	}
}
