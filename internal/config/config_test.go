package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultDoodleConfig() {
		t.Errorf("embedded YAML and DefaultDoodleConfig differ:\n%+v\n%+v", cfg, DefaultDoodleConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadDoodleFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, src, err := LoadDoodle("")
	if err != nil {
		t.Fatalf("LoadDoodle: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg.Physics.Gravity != 1000 {
		t.Errorf("gravity = %v, expected 1000", cfg.Physics.Gravity)
	}
}

func TestLoadDoodleLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "doodle:\n  move_x: 25\n"
	if err := os.WriteFile(filepath.Join(dir, localConfigPath), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadDoodle("")
	if err != nil {
		t.Fatalf("LoadDoodle: %v", err)
	}
	if src != SourceLocal {
		t.Errorf("source = %q, expected %q", src, SourceLocal)
	}
	if cfg.Doodle.MoveX != 25 {
		t.Errorf("move_x = %v, expected 25", cfg.Doodle.MoveX)
	}
	// Keys absent from the file keep their defaults
	if cfg.Doodle.JumpY != 170 {
		t.Errorf("jump_y = %v, expected default 170", cfg.Doodle.JumpY)
	}
}

func TestLoadDoodleCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "physics:\n  gravity: 1200\nviewport:\n  width: 480\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadDoodle(path)
	if err != nil {
		t.Fatalf("LoadDoodle: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Physics.Gravity != 1200 || cfg.Viewport.Width != 480 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Viewport.Height != 700 {
		t.Errorf("height = %v, expected default 700", cfg.Viewport.Height)
	}
}

func TestLoadDoodleCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadDoodle(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadDoodle(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("malformed YAML should fail to parse, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  rebound_velocity: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadDoodle(invalid); err == nil || !strings.Contains(err.Error(), "rebound_velocity") {
		t.Errorf("positive rebound velocity should be rejected, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DoodleConfig)
		wantErr string
	}{
		{"defaults", func(*DoodleConfig) {}, ""},
		{"zero gravity", func(c *DoodleConfig) { c.Physics.Gravity = 0 }, "physics.gravity"},
		{"zero tick", func(c *DoodleConfig) { c.Physics.TickDuration = 0 }, "physics.tick_duration"},
		{"upward rebound", func(c *DoodleConfig) { c.Physics.ReboundVelocity = 10 }, "rebound_velocity"},
		{"doodle too wide", func(c *DoodleConfig) { c.Doodle.Width = 500 }, "exceeds viewport.width"},
		{"jump too short", func(c *DoodleConfig) { c.Doodle.JumpY = 40 }, "doodle.jump_y"},
		{"negative move", func(c *DoodleConfig) { c.Doodle.MoveX = -1 }, "move_x"},
		{"unknown color", func(c *DoodleConfig) { c.Colors.Platform = "plaid" }, "colors.platform"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDoodleConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultDoodleConfig()

	if cfg.TickInterval() != 16*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 16ms", cfg.TickInterval())
	}
	if tps := cfg.TicksPerSecond(); tps < 62 || tps > 63 {
		t.Errorf("TicksPerSecond() = %d, expected 62 or 63", tps)
	}
	if cfg.Midline() != 350 {
		t.Errorf("Midline() = %v, expected 350", cfg.Midline())
	}

	cfg.Colors.Doodle = "nope"
	if cfg.DoodleColor() != 0 {
		t.Errorf("unknown color should fall back to default, got %v", cfg.DoodleColor())
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
