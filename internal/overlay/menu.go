package overlay

import (
	"fmt"

	"github.com/Faultbox/sceneview/internal/gui"
)

// Window titles of the built-in and inspector tool windows.
const (
	titleStyleEditor = "Dear ImGui Style Editor"
	titleModels      = "Model Inspector"
	titleCameras     = "Camera Inspector"
	titleTasks       = "Task Queue"
)

// Size of the scrolling region in File > Options.
const (
	scrollHeight = 60
	scrollLines  = 10
)

var comboItems = []string{"Yes", "No", "Maybe"}

// ShowMainMenu draws the close confirmation (when a quit is pending), the
// open built-in tool windows and the main menu bar.
func ShowMainMenu(v gui.View, opts *Options) {
	if opts.File.RequestingClose {
		ShowClosePopup(v, &opts.File)
	}

	showBuiltinTools(v, &opts.Tools)

	if !v.BeginMainMenuBar() {
		return
	}
	if v.BeginMenu("File", true) {
		ShowFileMenu(v, &opts.Menu, &opts.File)
		v.EndMenu()
	}
	if v.BeginMenu("Edit", true) {
		showEditMenu(v)
		v.EndMenu()
	}
	ShowTools(v, &opts.Tools, &opts.Paused)
	v.EndMainMenuBar()
}

func showBuiltinTools(v gui.View, t *ToolVisibility) {
	if t.Metrics {
		v.ShowMetricsWindow(&t.Metrics)
	}
	if t.DebugLog {
		v.ShowDebugLogWindow(&t.DebugLog)
	}
	if t.IDStack {
		v.ShowIDStackToolWindow(&t.IDStack)
	}
	if t.StyleEditor {
		if v.BeginWindow(titleStyleEditor, &t.StyleEditor) {
			v.ShowStyleEditor()
		}
		v.EndWindow()
	}
	if t.About {
		v.ShowAboutWindow(&t.About)
	}
}

// ShowFileMenu draws the contents of the File menu. New, Open, Save and
// Save As are recorded as requests for the host; Quit starts the close flow.
func ShowFileMenu(v gui.View, m *FileMenuState, file *FileCloseState) {
	if v.MenuItem("New", "", false, true) {
		m.requests.New = true
	}
	if v.MenuItem("Open", "Ctrl+O", false, true) {
		m.requests.Open = true
	}
	if v.BeginMenu("Open Recent", len(m.Recent) > 0) {
		for _, path := range m.Recent {
			if v.MenuItem(path, "", false, true) {
				m.requests.OpenPath = path
			}
		}
		v.EndMenu()
	}
	if v.MenuItem("Save", "Ctrl+S", false, true) {
		m.requests.Save = true
	}
	if v.MenuItem("Save As..", "", false, true) {
		m.requests.SaveAs = true
	}

	v.Separator()
	if v.BeginMenu("Options", true) {
		v.MenuToggle("Enabled", "", &m.OptionsEnabled, true)
		if v.BeginChild("child", scrollHeight) {
			for i := 0; i < scrollLines; i++ {
				v.Text(fmt.Sprintf("Scrolling Text %d", i))
			}
		}
		v.EndChild()
		v.SliderFloat("Value", &m.Value, 0, 1)
		v.InputFloat("Input", &m.Value, 0.1)
		v.Combo("Combo", &m.Choice, comboItems)
		v.Checkbox("SomeOption", &m.SomeOption)
		v.EndMenu()
	}
	if v.BeginMenu("Colors", true) {
		showColors(v)
		v.EndMenu()
	}
	if v.BeginMenu("Disabled", false) {
		v.EndMenu()
	}
	v.MenuItem("Checked", "", true, true)

	v.Separator()
	if v.MenuItem("Quit", "Alt+F4", false, true) {
		file.RequestQuit()
	}
}

// showColors lists every style color with a swatch.
func showColors(v gui.View) {
	for i, name := range v.StyleColorNames() {
		v.ColorSwatch(i)
		v.SameLine()
		v.MenuItem(name, "", false, true)
	}
}

// showEditMenu draws the Edit menu. The items have no behavior yet.
func showEditMenu(v gui.View) {
	v.MenuItem("Undo", "CTRL+Z", false, true)
	v.MenuItem("Redo", "CTRL+Y", false, false)
	v.Separator()
	v.MenuItem("Cut", "CTRL+X", false, true)
	v.MenuItem("Copy", "CTRL+C", false, true)
	v.MenuItem("Paste", "CTRL+V", false, true)
}

// ShowTools draws the Tools menu with one toggle per tool window.
func ShowTools(v gui.View, t *ToolVisibility, paused *bool) {
	if !v.BeginMenu("Tools", true) {
		return
	}
	v.MenuToggle("Metrics/Debugger", "", &t.Metrics, true)
	v.MenuToggle("Debug Log", "", &t.DebugLog, true)
	v.MenuToggle("ID Stack Tool", "", &t.IDStack, true)
	v.MenuToggle("Style Editor", "", &t.StyleEditor, true)
	v.MenuToggle("About Dear ImGui", "", &t.About, true)
	v.Separator()
	v.MenuToggle(titleModels, "", &t.ModelTool, true)
	v.MenuToggle(titleCameras, "", &t.CameraTool, true)
	v.MenuToggle(titleTasks, "", &t.TaskTool, true)
	v.Separator()
	v.MenuToggle("Pause", "P", paused, true)
	v.EndMenu()
}
