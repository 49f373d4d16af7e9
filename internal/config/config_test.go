package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode("dragon.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ from DefaultConfig():\n got  %+v\n want %+v", cfg, DefaultConfig())
	}
}

func TestGapSize(t *testing.T) {
	o := DefaultConfig().Obstacles

	tests := []struct {
		score, expected int
	}{
		{0, 20},
		{1, 19},
		{10, 10},
		{17, 3},
		{18, 2},
		{19, 2},
		{500, 2},
	}

	for _, tc := range tests {
		if got := o.GapSize(tc.score); got != tc.expected {
			t.Errorf("GapSize(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DragonConfig)
		valid  bool
	}{
		{"defaults", func(*DragonConfig) {}, true},
		{"zero width", func(c *DragonConfig) { c.Screen.Width = 0 }, false},
		{"negative height", func(c *DragonConfig) { c.Screen.Height = -1 }, false},
		{"zero frame duration", func(c *DragonConfig) { c.Physics.FrameDurationMs = 0 }, false},
		{"empty gap range", func(c *DragonConfig) { c.Obstacles.GapMin = 40 }, false},
		{"negative min size", func(c *DragonConfig) { c.Obstacles.MinSize = -1 }, false},
		{"max below min", func(c *DragonConfig) { c.Obstacles.MaxSize = 1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.5\nobstacles:\n  max_size: 30\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.MaxSize != 30 {
		t.Errorf("max_size = %d, expected 30", cfg.Obstacles.MaxSize)
	}
	// Unset keys keep their defaults
	if cfg.Physics.FrameDurationMs != 75.0 {
		t.Errorf("frame_duration_ms = %v, expected default 75", cfg.Physics.FrameDurationMs)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[physics]\nflap_strength = 1.5\nclamp_terminal = true\n\n[player]\nstart_y = 10\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.FlapStrength != 1.5 || !cfg.Physics.ClampTerminal {
		t.Errorf("physics = %+v, expected flap 1.5 with clamp", cfg.Physics)
	}
	if cfg.Player.StartY != 10 || cfg.Player.StartX != 5 {
		t.Errorf("player = %+v, expected (5, 10)", cfg.Player)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("screen: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  gap_min: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid config = %v, expected ErrInvalid", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestMarshal(t *testing.T) {
	yamlOut, err := Marshal(DefaultConfig(), "yaml")
	if err != nil {
		t.Fatalf("Marshal(yaml) failed: %v", err)
	}
	if !strings.Contains(string(yamlOut), "frame_duration_ms: 75") {
		t.Errorf("yaml output missing frame duration:\n%s", yamlOut)
	}

	tomlOut, err := Marshal(DefaultConfig(), "toml")
	if err != nil {
		t.Fatalf("Marshal(toml) failed: %v", err)
	}
	if !strings.Contains(string(tomlOut), "[obstacles]") {
		t.Errorf("toml output missing obstacles table:\n%s", tomlOut)
	}

	if _, err := Marshal(DefaultConfig(), "xml"); err == nil {
		t.Error("Marshal(xml) should fail")
	}
}
