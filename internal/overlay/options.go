package overlay

import "github.com/Faultbox/sceneview/internal/config"

// maxRecentFiles bounds the File > Open Recent list.
const maxRecentFiles = 10

// ToolVisibility holds one open flag per tool window. Menu toggles and
// window close boxes both write through these fields.
type ToolVisibility struct {
	Metrics     bool
	DebugLog    bool
	IDStack     bool
	StyleEditor bool
	About       bool
	ModelTool   bool
	CameraTool  bool
	TaskTool    bool
}

// FileRequests are File menu actions the host has not handled yet.
type FileRequests struct {
	New      bool
	Open     bool
	OpenPath string // set when picked from Open Recent
	Save     bool
	SaveAs   bool
}

// Any reports whether any request is pending.
func (r FileRequests) Any() bool {
	return r.New || r.Open || r.OpenPath != "" || r.Save || r.SaveAs
}

// FileMenuState is the widget state behind the File menu.
type FileMenuState struct {
	OptionsEnabled bool
	Value          float32
	Choice         int32
	SomeOption     bool
	Recent         []string

	requests FileRequests
}

// TakeRequests returns the pending File menu requests and clears them.
func (m *FileMenuState) TakeRequests() FileRequests {
	r := m.requests
	m.requests = FileRequests{}
	return r
}

// AddRecent moves path to the front of the recent files list.
func (m *FileMenuState) AddRecent(path string) {
	if path == "" {
		return
	}
	recent := []string{path}
	for _, p := range m.Recent {
		if p != path && len(recent) < maxRecentFiles {
			recent = append(recent, p)
		}
	}
	m.Recent = recent
}

// Options is all state the overlay keeps between frames.
type Options struct {
	File   FileCloseState
	Menu   FileMenuState
	Tools  ToolVisibility
	Paused bool
}

// NewOptions builds the startup state from configuration.
func NewOptions(cfg config.OverlayConfig) Options {
	file := NewFileCloseState()
	file.UnsavedChanges = cfg.AssumeUnsaved

	return Options{
		File: file,
		Menu: FileMenuState{
			Value:      0.5,
			SomeOption: true,
		},
		Tools: ToolVisibility{
			Metrics:     cfg.Tools.Metrics,
			DebugLog:    cfg.Tools.DebugLog,
			IDStack:     cfg.Tools.IDStack,
			StyleEditor: cfg.Tools.StyleEditor,
			About:       cfg.Tools.About,
			ModelTool:   cfg.Tools.Models,
			CameraTool:  cfg.Tools.Cameras,
			TaskTool:    cfg.Tools.Tasks,
		},
	}
}

// ToolsConfig converts the current tool visibility back to configuration,
// so it can be saved for the next session.
func (t ToolVisibility) ToolsConfig() config.ToolsConfig {
	return config.ToolsConfig{
		Metrics:     t.Metrics,
		DebugLog:    t.DebugLog,
		IDStack:     t.IDStack,
		StyleEditor: t.StyleEditor,
		About:       t.About,
		Models:      t.ModelTool,
		Cameras:     t.CameraTool,
		Tasks:       t.TaskTool,
	}
}
