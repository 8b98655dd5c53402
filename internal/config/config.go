// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	VSync   bool   `yaml:"vsync"`
	Backend string `yaml:"backend"` // sdl or glfw
}

// ViewerConfig holds what is shown and how.
type ViewerConfig struct {
	Model      string      `yaml:"model"` // Path to the OBJ file
	ShowBounds bool        `yaml:"show_bounds"`
	Lighting   bool        `yaml:"lighting"`
	Light      LightConfig `yaml:"light"`
	ClearColor [3]float32  `yaml:"clear_color"`

	// Screenshot, if set, renders a single frame to this PNG path and exits.
	Screenshot string `yaml:"screenshot"`
}

// LightConfig places the directional light, in degrees relative to the view.
type LightConfig struct {
	Yaw     float32 `yaml:"yaw"`
	Pitch   float32 `yaml:"pitch"`
	Ambient float32 `yaml:"ambient"`
}

// ControlsConfig holds the orbit camera start state and key steps.
type ControlsConfig struct {
	Distance   float32 `yaml:"distance"`
	Yaw        float32 `yaml:"yaw"`
	Pitch      float32 `yaml:"pitch"`
	ZoomStep   float32 `yaml:"zoom_step"`
	RotateStep float32 `yaml:"rotate_step"`

	// Clamping is off unless enabled.
	Clamp       bool    `yaml:"clamp"`
	PitchLimit  float32 `yaml:"pitch_limit"`
	MinDistance float32 `yaml:"min_distance"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "OBJ Viewer",
			Width:   800,
			Height:  600,
			VSync:   true,
			Backend: "sdl",
		},
		Viewer: ViewerConfig{
			Model:      "",
			ShowBounds: false,
			Lighting:   true,
			Light: LightConfig{
				Yaw:     0.0,
				Pitch:   0.0,
				Ambient: 0.2,
			},
			ClearColor: [3]float32{0.1, 0.1, 0.3},
		},
		Controls: ControlsConfig{
			Distance:    50.0,
			Yaw:         0.0,
			Pitch:       0.0,
			ZoomStep:    1.0,
			RotateStep:  5.0,
			Clamp:       false,
			PitchLimit:  89.0,
			MinDistance: 1.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
