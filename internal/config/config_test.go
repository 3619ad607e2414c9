package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("exists should be false for a missing file")
	}
	if cfg.Deck.WindowSize != 4 {
		t.Errorf("default window size = %d, want 4", cfg.Deck.WindowSize)
	}
	if !cfg.Deck.IncludeMedia {
		t.Error("include_media should default to true")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.Curriculum) {
		t.Errorf("curriculum path should be absolute after normalize: %q", cfg.Paths.Curriculum)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`curriculum = "my_curriculum.json"`,
		"[deck]",
		"window_size = 3",
		"include_media = false",
		"[logging]",
		`format = "JSON"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Deck.WindowSize != 3 {
		t.Errorf("window size = %d, want 3", cfg.Deck.WindowSize)
	}
	if cfg.Deck.IncludeMedia {
		t.Error("include_media should be false")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format should be lowercased, got %q", cfg.Logging.Format)
	}
	if filepath.Base(cfg.Paths.Curriculum) != "my_curriculum.json" {
		t.Errorf("curriculum path = %q", cfg.Paths.Curriculum)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		mention string
	}{
		{"negative window", "[deck]\nwindow_size = -1\n", "window_size"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.mention) {
				t.Errorf("error %q should mention %q", err, tc.mention)
			}
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	expanded, err := ExpandPath("~/deck")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if expanded != filepath.Join(home, "deck") {
		t.Errorf("expanded = %q", expanded)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Error("sample config should exist")
	}
	if cfg.Deck.WindowSize != 4 {
		t.Errorf("sample window size = %d, want 4", cfg.Deck.WindowSize)
	}
}
