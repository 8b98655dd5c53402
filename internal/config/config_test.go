package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "OBJ Viewer" {
		t.Errorf("expected title 'OBJ Viewer', got %q", cfg.Window.Title)
	}
	if cfg.Window.Backend != "sdl" {
		t.Errorf("expected sdl backend, got %q", cfg.Window.Backend)
	}

	if cfg.Controls.Distance != 50 {
		t.Errorf("expected distance 50, got %v", cfg.Controls.Distance)
	}
	if cfg.Controls.ZoomStep != 1 || cfg.Controls.RotateStep != 5 {
		t.Errorf("expected steps 1/5, got %v/%v", cfg.Controls.ZoomStep, cfg.Controls.RotateStep)
	}
	if cfg.Controls.Clamp {
		t.Error("expected clamping to be off by default")
	}

	if cfg.Viewer.ClearColor != [3]float32{0.1, 0.1, 0.3} {
		t.Errorf("unexpected clear color %v", cfg.Viewer.ClearColor)
	}
	if cfg.Viewer.ShowBounds {
		t.Error("expected show_bounds to be false by default")
	}
	if cfg.Viewer.Light.Ambient != 0.2 || cfg.Viewer.Light.Yaw != 0 || cfg.Viewer.Light.Pitch != 0 {
		t.Errorf("unexpected light %+v", cfg.Viewer.Light)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "objview.yaml")

	yamlContent := `
window:
  width: 1024
  height: 768
  backend: glfw

viewer:
  model: "models/teapot.obj"
  show_bounds: true

controls:
  distance: 12.5
  pitch: 30
  clamp: true

logging:
  level: "debug"
  log_file: "objview.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Backend != "glfw" {
		t.Errorf("expected glfw backend, got %q", cfg.Window.Backend)
	}
	if cfg.Viewer.Model != "models/teapot.obj" {
		t.Errorf("expected model path, got %q", cfg.Viewer.Model)
	}
	if !cfg.Viewer.ShowBounds {
		t.Error("expected show_bounds to be true")
	}
	if cfg.Controls.Distance != 12.5 || cfg.Controls.Pitch != 30 || !cfg.Controls.Clamp {
		t.Errorf("unexpected controls %+v", cfg.Controls)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "objview.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}

	// Unset keys keep their defaults.
	if cfg.Window.Title != "OBJ Viewer" {
		t.Errorf("expected default title, got %q", cfg.Window.Title)
	}
	if cfg.Controls.RotateStep != 5 {
		t.Errorf("expected default rotate step, got %v", cfg.Controls.RotateStep)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/objview.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "objview.yaml"), []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find objview.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "cube.obj" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.Model != "cube.obj" {
					t.Errorf("expected model cube.obj, got %q", cfg.Viewer.Model)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "backend flag",
			setup: func() { *flagBackend = "glfw" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Backend != "glfw" {
					t.Errorf("expected glfw backend, got %q", cfg.Window.Backend)
				}
			},
			teardown: func() { *flagBackend = "" },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1280
				*flagHeight = 720
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
					t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "bounds flag",
			setup: func() { *flagBounds = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Viewer.ShowBounds {
					t.Error("expected show_bounds with bounds flag")
				}
			},
			teardown: func() { *flagBounds = false },
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "view.log" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "view.log" {
					t.Errorf("expected log file view.log, got %q", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
		{
			name:  "screenshot flag",
			setup: func() { *flagScreenshot = "out/frame.png" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.Screenshot != "out/frame.png" {
					t.Errorf("expected screenshot path, got %q", cfg.Viewer.Screenshot)
				}
			},
			teardown: func() { *flagScreenshot = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "objview.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
viewer:
  model: from-file.obj
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	if cfg.Viewer.Model != "from-file.obj" {
		t.Errorf("expected model from file, got %q", cfg.Viewer.Model)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(c *Config) { c.Viewer.Model = "a.obj" }, nil},
		{"no model", func(c *Config) {}, ErrNoModel},
		{"zero width", func(c *Config) { c.Viewer.Model = "a.obj"; c.Window.Width = 0 }, ErrInvalidSize},
		{"bad backend", func(c *Config) { c.Viewer.Model = "a.obj"; c.Window.Backend = "x11" }, ErrInvalidBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "objview.yaml")

	cfg := Default()
	cfg.Viewer.Model = "saved.obj"
	cfg.Controls.Yaw = 45
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Viewer.Model != "saved.obj" || loaded.Controls.Yaw != 45 {
		t.Errorf("saved config not restored: %+v", loaded)
	}
}
