package config

import (
	"path/filepath"
	"testing"
)

func TestLanguagesMatch(t *testing.T) {
	cfg := Languages{
		Languages: []Language{
			{Name: "go", FileTypes: []string{"go", "go.mod"}},
			{Name: "bash", FileTypes: []string{".sh", ".bashrc"}},
		},
	}

	if got := cfg.Match("cmd/main.go"); got == nil || got.Name != "go" {
		t.Fatalf("Match main.go = %#v, want go", got)
	}
	if got := cfg.Match("go.mod"); got == nil || got.Name != "go" {
		t.Fatalf("Match go.mod = %#v, want go", got)
	}
	if got := cfg.Match("build.SH"); got == nil || got.Name != "bash" {
		t.Fatalf("Match build.SH = %#v, want bash", got)
	}
	if got := cfg.Match(".bashrc"); got == nil || got.Name != "bash" {
		t.Fatalf("Match .bashrc = %#v, want bash", got)
	}
	if got := cfg.Match("notes.txt"); got != nil {
		t.Fatalf("Match notes.txt = %#v, want nil", got)
	}
	if got := cfg.Match(""); got != nil {
		t.Fatalf("Match empty = %#v, want nil", got)
	}
}

func TestLoadLanguages(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LED_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "languages.toml"), `
[[language]]
name = "go"
file-types = ["go"]

[[language]]
name = "toml"
file-types = ["toml"]
`)

	cfg, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages error: %v", err)
	}
	if len(cfg.Languages) != 2 {
		t.Fatalf("Languages len = %d, want 2", len(cfg.Languages))
	}
	if got := cfg.Match("config.toml"); got == nil || got.Name != "toml" {
		t.Fatalf("Match config.toml = %#v, want toml", got)
	}
}

func TestLoadLanguagesMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LED_CONFIG_HOME", dir)

	cfg, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages error: %v", err)
	}
	if len(cfg.Languages) != 0 {
		t.Fatalf("Languages len = %d, want 0", len(cfg.Languages))
	}
}
