package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlayer("")
	if err != nil {
		t.Fatalf("LoadPlayer() failed: %v", err)
	}
	if cfg != DefaultPlayerConfig() {
		t.Errorf("embedded defaults differ from DefaultPlayerConfig():\n got  %+v\n want %+v", cfg, DefaultPlayerConfig())
	}
	if len(GetDefaultYAML()) == 0 {
		t.Error("embedded default YAML is empty")
	}
}

func TestLoadPlayerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player.yaml")
	writeFile(t, path, "physics:\n  move_speed: 120\nbody:\n  width: 10\n")

	cfg, err := LoadPlayer(path)
	if err != nil {
		t.Fatalf("LoadPlayer() failed: %v", err)
	}

	if cfg.Physics.MoveSpeed != 120 {
		t.Errorf("MoveSpeed = %g, expected 120", cfg.Physics.MoveSpeed)
	}
	if cfg.Body.Width != 10 {
		t.Errorf("Width = %d, expected 10", cfg.Body.Width)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Physics.Gravity != 2000 || cfg.Body.Height != 66 || cfg.Runtime.TickRate != 60 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadPlayerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPlayer(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "physics: [1, 2\n")
		if _, err := LoadPlayer(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		writeFile(t, path, "body:\n  width: 0\n")
		_, err := LoadPlayer(path)
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "body" {
			t.Errorf("Field = %q, expected body", verr.Field)
		}
	})
}

func TestLoadPlayerUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".platformer", "configs", "player.yaml"), "physics:\n  gravity: 900\n")

	cfg, err := LoadPlayer("")
	if err != nil {
		t.Fatalf("LoadPlayer() failed: %v", err)
	}
	if cfg.Physics.Gravity != 900 {
		t.Errorf("Gravity = %g, expected user override 900", cfg.Physics.Gravity)
	}
}

func TestLoadPlayerSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".platformer", "configs", "player.yaml"), "runtime:\n  tick_rate: -1\n")

	cfg, err := LoadPlayer("")
	if err != nil {
		t.Fatalf("LoadPlayer() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 60 {
		t.Errorf("invalid user config should be skipped, tick rate = %d", cfg.Runtime.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlayerConfig)
		field  string
	}{
		{"defaults are valid", func(*PlayerConfig) {}, ""},
		{"zero height", func(c *PlayerConfig) { c.Body.Height = 0 }, "body"},
		{"negative fall clamp", func(c *PlayerConfig) { c.Physics.MaxFallSpeed = -1 }, "physics.max_fall_speed"},
		{"zero tick rate", func(c *PlayerConfig) { c.Runtime.TickRate = 0 }, "runtime.tick_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlayerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.field == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.field {
				t.Errorf("expected ValidationError on %s, got %v", tc.field, err)
			}
		})
	}
}
