// Package gui is the boundary between the overlay and the immediate-mode
// GUI toolkit. Overlay code draws through View only, so it can run against
// Dear ImGui in the application and against a recorder in tests.
package gui

// View is one frame's worth of immediate-mode drawing calls.
//
// Tree nodes follow ImGui's ID stack semantics: TreeNode returns true when
// the node is expanded, in which case its id is pushed and the caller must
// call TreePop after drawing the children. Expansion state lives in the
// view, keyed by the nesting path of ids, never in the data being drawn.
type View interface {
	// Menus
	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenu(label string, enabled bool) bool
	EndMenu()
	// MenuItem draws a plain item and reports whether it was clicked.
	MenuItem(label, shortcut string, selected, enabled bool) bool
	// MenuToggle draws a checkable item bound to *open.
	MenuToggle(label, shortcut string, open *bool, enabled bool) bool

	// Windows. A nil open pointer draws a window without a close box.
	BeginWindow(title string, open *bool) bool
	EndWindow()

	// Trees
	TreeNode(id, label string) bool
	TreePop()

	// Popups
	OpenPopup(id string)
	BeginPopupModal(id string) bool
	CloseCurrentPopup()
	EndPopup()

	// Layout and text. Text is drawn verbatim, never as a format string.
	Separator()
	SameLine()
	Text(text string)
	TextDisabled(text string)
	// BeginChild starts a bordered scrolling region of the given height.
	// EndChild must be called even when it returns false.
	BeginChild(id string, height float32) bool
	EndChild()

	// Style colors. ColorSwatch draws a square filled with style color idx,
	// an index into StyleColorNames.
	StyleColorNames() []string
	ColorSwatch(idx int)

	// Widgets
	Button(label string, width float32) bool
	Checkbox(label string, v *bool) bool
	SliderFloat(label string, v *float32, min, max float32) bool
	InputFloat(label string, v *float32, step float32) bool
	DragFloat(label string, v *float32, speed float32) bool
	DragFloat3(label string, v *[3]float32, speed float32) bool
	Combo(label string, current *int32, items []string) bool

	// Built-in toolkit windows
	ShowMetricsWindow(open *bool)
	ShowDebugLogWindow(open *bool)
	ShowIDStackToolWindow(open *bool)
	ShowStyleEditor()
	ShowAboutWindow(open *bool)

	// WantCaptureKeyboard and WantCaptureMouse report whether the GUI
	// consumed this frame's input.
	WantCaptureKeyboard() bool
	WantCaptureMouse() bool
}
