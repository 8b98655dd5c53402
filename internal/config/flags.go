package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagModel      = flag.String("model", "", "Path to the OBJ file (or pass it as the first argument)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagBackend    = flag.String("backend", "", "Window backend: sdl or glfw")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagBounds     = flag.Bool("bounds", false, "Draw the mesh bounding box")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file as well")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagScreenshot = flag.String("screenshot", "", "Render one frame to this PNG file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the --save-config destination, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// modelArg returns the model path from --model or the first positional argument.
func modelArg() string {
	if *flagModel != "" {
		return *flagModel
	}
	return flag.Arg(0)
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if model := modelArg(); model != "" {
		cfg.Viewer.Model = model
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagBounds {
		cfg.Viewer.ShowBounds = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagScreenshot != "" {
		cfg.Viewer.Screenshot = *flagScreenshot
	}
}
