// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Overlay OverlayConfig `yaml:"overlay"`
	Scene   SceneConfig   `yaml:"scene"`
	Tasks   TasksConfig   `yaml:"tasks"`
	Logging LoggingConfig `yaml:"logging"`

	source    string      // file the config was loaded from, or DefaultPath
	fileTools ToolsConfig // tool visibility before flag overrides
	forced    ToolsConfig // tools opened by flags
}

// WindowConfig holds the platform window and GUI backend settings.
type WindowConfig struct {
	Title    string  `yaml:"title"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Backend  string  `yaml:"backend"` // "glfw" or "sdl"
	FontPath string  `yaml:"font_path"`
	FontSize float32 `yaml:"font_size"`
}

// OverlayConfig holds the debug overlay's initial state.
type OverlayConfig struct {
	Tools ToolsConfig `yaml:"tools"`
	// AssumeUnsaved starts the session with unsaved changes so that
	// quitting always asks first.
	AssumeUnsaved bool `yaml:"assume_unsaved"`
}

// ToolsConfig lists which tool windows are open at startup.
type ToolsConfig struct {
	Metrics     bool `yaml:"metrics"`
	DebugLog    bool `yaml:"debug_log"`
	IDStack     bool `yaml:"id_stack"`
	StyleEditor bool `yaml:"style_editor"`
	About       bool `yaml:"about"`
	Models      bool `yaml:"models"`
	Cameras     bool `yaml:"cameras"`
	Tasks       bool `yaml:"tasks"`
}

// SceneConfig holds scene file and output locations.
type SceneConfig struct {
	Path          string `yaml:"path"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// TasksConfig sizes the background task queue.
type TasksConfig struct {
	Capacity int           `yaml:"capacity"`
	Workers  int           `yaml:"workers"`
	Idle     time.Duration `yaml:"idle"`
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
			Title:    "Scene Viewer",
			Width:    1280,
			Height:   720,
			Backend:  "glfw",
			FontSize: 16,
		},
		Overlay: OverlayConfig{
			AssumeUnsaved: true,
		},
		Scene: SceneConfig{
			ScreenshotDir: "screenshots",
		},
		Tasks: TasksConfig{
			Capacity: 64,
			Workers:  2,
			Idle:     50 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
