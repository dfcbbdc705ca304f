package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STEPDECK_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.ListMode != "cumulative" {
		t.Fatalf("list mode = %q, want cumulative", cfg.UI.ListMode)
	}
	if !cfg.UI.ShowProgress {
		t.Fatalf("expected progress on by default")
	}
	if want := filepath.Join(home, "slides"); cfg.Decks.Dir != want {
		t.Fatalf("decks dir = %q, want %q", cfg.Decks.Dir, want)
	}
	if cfg.Log.Level != "normal" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "deck.toml")
	data := []byte(`
[ui]
list_mode = "single"
code_style = "dracula"
back_reveals_all = true

[decks]
dir = "/tmp/decks"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("STEPDECK_UI_TRANSITION", "slideup")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.ListMode != "single" || cfg.UI.CodeStyle != "dracula" || !cfg.UI.BackRevealsAll {
		t.Fatalf("file values not applied: %+v", cfg.UI)
	}
	if cfg.UI.Transition != "slideup" {
		t.Fatalf("env override not applied: %q", cfg.UI.Transition)
	}
	if cfg.Decks.Dir != "/tmp/decks" {
		t.Fatalf("decks dir = %q", cfg.Decks.Dir)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "out", "config.toml")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.UI.ListMode = "single"
	cfg.UI.ShowProgress = false
	if err := Save(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.UI.ListMode != "single" || got.UI.ShowProgress {
		t.Fatalf("round trip mismatch: %+v", got.UI)
	}
}

func TestDumpIsLoadable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.UI.CodeStyle = "github"
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	path := filepath.Join(home, "dumped.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got != cfg {
		t.Fatalf("dump round trip mismatch:\n%+v\n%+v", got, cfg)
	}
}
