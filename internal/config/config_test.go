package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("platformer"), &cfg); err != nil {
		t.Fatalf("embedded platformer.yaml does not parse: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("embedded platformer.yaml is invalid: %v", err)
	}

	want := DefaultPlatformerConfig()
	if cfg != want {
		t.Errorf("embedded YAML and DefaultPlatformerConfig() diverge:\nyaml: %+v\ncode: %+v", cfg, want)
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "player:\n  lives: 7\n  speed: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Player.Lives != 7 || cfg.Player.Speed != 5 {
		t.Errorf("custom values not applied: lives=%d speed=%v", cfg.Player.Lives, cfg.Player.Speed)
	}
	// Fields missing from the file keep defaults
	if cfg.Player.JumpPower != 12 {
		t.Errorf("JumpPower = %v, expected default 12", cfg.Player.JumpPower)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "player: [", "failed to parse"},
		{"invalid values", "player:\n  width: 0\n", "player.width must be positive"},
		{"unknown progression", "difficulty:\n  progression:\n    type: sometimes\n", "unknown difficulty.progression.type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadPlatformer(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		enabled     bool
		initialDiff float64
	}{
		{DifficultyEasy, 5, true, 0.0},
		{DifficultyNormal, 3, true, 0.3},
		{DifficultyHard, 2, true, 0.7},
		{DifficultyFixed, 3, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tc.preset)
			if cfg.Player.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialDiff {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialDiff)
			}
		})
	}

	// Empty preset leaves the config untouched
	cfg := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&cfg, "")
	if cfg != DefaultPlatformerConfig() {
		t.Error("empty preset should not modify the config")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	if ParseDifficultyPreset("hard") != DifficultyHard {
		t.Error("expected hard preset")
	}
	if ParseDifficultyPreset("nightmare") != "" {
		t.Error("unknown preset should parse as empty")
	}
}

func TestDifficultyStageProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "stage", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		stage    int
		expected float64
	}{
		{1, 0.0},
		{6, 0.5},
		{11, 1.0},
		{50, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(Progress{Stage: tc.stage}); got != tc.expected {
			t.Errorf("Level(stage %d) = %v, expected %v", tc.stage, got, tc.expected)
		}
	}

	if got := d.Speed(1.0, Progress{Stage: 11}); got != 2.0 {
		t.Errorf("Speed at max difficulty = %v, expected 2.0", got)
	}

	d.SetEnabled(false)
	if got := d.Speed(1.0, Progress{Stage: 11}); got != 1.0 {
		t.Errorf("Speed with progression disabled = %v, expected 1.0", got)
	}
}

func TestDifficultyInitialLevelClamped(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Progression: ProgressionConfig{Type: "none"}})
	d.SetInitialLevel(3)
	if got := d.Level(Progress{}); got != 1.0 {
		t.Errorf("Level() = %v, expected clamp to 1.0", got)
	}
}
