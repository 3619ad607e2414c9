package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCurriculumJSON = `{
  "meta": {"dialect": "en-US", "version": "1"},
  "alphabet": {
    "letters": [
      {"id": "letter_a", "upper": "A", "lower": "a", "name": "ay", "order": 1},
      {"id": "letter_b", "upper": "B", "lower": "b", "name": "bee", "order": 2}
    ],
    "confusables": [
      {"id": "confusable_b_d", "left": "b", "right": "d"}
    ]
  },
  "items": [
    {
      "id": "sound_ae",
      "type": "sound",
      "ipa": "/æ/",
      "graphemes": ["a"],
      "examples": [{"word": "apple", "ipa": "/ˈæp.əl/"}]
    },
    {
      "id": "minpair_s_vs_sh_sip_ship",
      "type": "minimal_pair_sound",
      "left": {"word": "sip", "ipa": "/sɪp/"},
      "right": {"word": "ship", "ipa": "/ʃɪp/"}
    }
  ]
}`

// writeTestConfig lays out a workspace in dir and returns the config path.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()

	curriculumPath := filepath.Join(dir, "curriculum.json")
	if err := os.WriteFile(curriculumPath, []byte(testCurriculumJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(`[paths]
curriculum = %q
output_dir = %q
audio_dir = %q
image_dir = %q
cache_dir = %q
log_dir = %q

[logging]
level = "error"
`,
		curriculumPath,
		filepath.Join(dir, "output"),
		filepath.Join(dir, "audio"),
		filepath.Join(dir, "images"),
		filepath.Join(dir, "cache"),
		filepath.Join(dir, "logs"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return configPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	configPath := writeTestConfig(t, t.TempDir())

	out, err := runCommand(t, "--config", configPath, "validate")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "Curriculum valid") {
		t.Errorf("output missing confirmation: %q", out)
	}
	if !strings.Contains(out, "items: 2") {
		t.Errorf("output missing item count: %q", out)
	}
}

func TestValidateCommandRejectsBadCurriculum(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)

	badPath := filepath.Join(dir, "bad.json")
	bad := `{
  "meta": {"dialect": "en-US", "version": "1"},
  "alphabet": {"letters": []},
  "items": [{"id": "sound_x", "type": "mystery"}]
}`
	if err := os.WriteFile(badPath, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runCommand(t, "--config", configPath, "validate", badPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "items[0] (id=sound_x)") {
		t.Errorf("error should carry the item path, got %q", err.Error())
	}
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)

	out, err := runCommand(t, "--config", configPath, "build")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(out, "Deck generated") {
		t.Errorf("output missing summary: %q", out)
	}

	packagePath := filepath.Join(dir, "output", "phonics_deck.apkg")
	if _, err := os.Stat(packagePath); err != nil {
		t.Errorf("package not written: %v", err)
	}
}

func TestBuildCommandExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	target := filepath.Join(dir, "custom.apkg")

	curriculumPath := filepath.Join(dir, "curriculum.json")
	if _, err := runCommand(t, "--config", configPath, "build", curriculumPath, target); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("package not written to explicit path: %v", err)
	}
}

func TestBuildCommandMissingCurriculum(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)

	_, err := runCommand(t, "--config", configPath, "build", filepath.Join(dir, "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing curriculum file")
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Errorf("output missing confirmation: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Error("second init without --overwrite should fail")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Errorf("init with --overwrite failed: %v", err)
	}
}

func TestMediaListEmpty(t *testing.T) {
	configPath := writeTestConfig(t, t.TempDir())

	out, err := runCommand(t, "--config", configPath, "media", "list")
	if err != nil {
		t.Fatalf("media list failed: %v", err)
	}
	if !strings.Contains(out, "Media manifest is empty") {
		t.Errorf("output = %q", out)
	}
}
