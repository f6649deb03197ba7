// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// RenderConfig holds software renderer settings.
type RenderConfig struct {
	FOV float32 `yaml:"fov"` // Vertical field of view in degrees

	// Light direction as sun angles, degrees
	LightLongitude float32 `yaml:"light_longitude"`
	LightLatitude  float32 `yaml:"light_latitude"`

	// Shading palette, darkest to brightest, "#rrggbb". Empty means
	// the built-in palette.
	Palette    []string `yaml:"palette"`
	Background string   `yaml:"background"`
}

// ViewerConfig holds interactive viewer settings.
type ViewerConfig struct {
	ShowFPS   bool    `yaml:"show_fps"`
	AutoSpin  bool    `yaml:"auto_spin"`
	SpinSpeed float32 `yaml:"spin_speed"` // Degrees per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Render: RenderConfig{
			FOV:            70,
			LightLongitude: -30,
			LightLatitude:  65,
		},
		Viewer: ViewerConfig{
			ShowFPS:   false,
			AutoSpin:  true,
			SpinSpeed: 30,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
