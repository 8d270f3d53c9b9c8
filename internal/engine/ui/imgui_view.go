package ui

import (
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/sceneview/internal/gui"
)

// modalFlags keeps the confirmation modal sized to its contents.
const modalFlags = imgui.WindowFlagsAlwaysAutoResize

// ImGuiView draws through Dear ImGui. It holds no state of its own; the
// ImGui context must be current while it is used.
type ImGuiView struct{}

// NewImGuiView returns a View bound to the current ImGui context.
func NewImGuiView() *ImGuiView {
	return &ImGuiView{}
}

var _ gui.View = (*ImGuiView)(nil)

func (v *ImGuiView) BeginMainMenuBar() bool { return imgui.BeginMainMenuBar() }
func (v *ImGuiView) EndMainMenuBar()        { imgui.EndMainMenuBar() }

func (v *ImGuiView) BeginMenu(label string, enabled bool) bool {
	return imgui.BeginMenuV(label, enabled)
}

func (v *ImGuiView) EndMenu() { imgui.EndMenu() }

func (v *ImGuiView) MenuItem(label, shortcut string, selected, enabled bool) bool {
	return imgui.MenuItemBoolV(label, shortcut, selected, enabled)
}

func (v *ImGuiView) MenuToggle(label, shortcut string, open *bool, enabled bool) bool {
	return imgui.MenuItemBoolPtrV(label, shortcut, open, enabled)
}

func (v *ImGuiView) BeginWindow(title string, open *bool) bool {
	return imgui.BeginV(title, open, imgui.WindowFlagsNone)
}

// EndWindow must be called even when BeginWindow returned false.
func (v *ImGuiView) EndWindow() { imgui.End() }

// TreeNode uses "###" so that the id alone identifies the node and the
// label can change between frames without losing expansion state.
func (v *ImGuiView) TreeNode(id, label string) bool {
	return imgui.TreeNodeExStrV(label+"###"+id, imgui.TreeNodeFlagsNone)
}

func (v *ImGuiView) TreePop() { imgui.TreePop() }

func (v *ImGuiView) OpenPopup(id string) { imgui.OpenPopupStr(id) }

func (v *ImGuiView) BeginPopupModal(id string) bool {
	return imgui.BeginPopupModalV(id, nil, modalFlags)
}

func (v *ImGuiView) CloseCurrentPopup() { imgui.CloseCurrentPopup() }
func (v *ImGuiView) EndPopup()          { imgui.EndPopup() }

func (v *ImGuiView) Separator() { imgui.Separator() }
func (v *ImGuiView) SameLine()  { imgui.SameLine() }

// Text and TextDisabled go through TextUnformatted: imgui.Text treats its
// argument as a printf format, and labels come from scene files.
func (v *ImGuiView) Text(text string) { imgui.TextUnformatted(text) }

func (v *ImGuiView) TextDisabled(text string) {
	imgui.PushStyleColorVec4(imgui.ColText, *imgui.StyleColorVec4(imgui.ColTextDisabled))
	imgui.TextUnformatted(text)
	imgui.PopStyleColor()
}

func (v *ImGuiView) BeginChild(id string, height float32) bool {
	return imgui.BeginChildStrV(id, imgui.NewVec2(0, height), imgui.ChildFlagsBorders, 0)
}

func (v *ImGuiView) EndChild() { imgui.EndChild() }

func (v *ImGuiView) StyleColorNames() []string {
	names := make([]string, int(imgui.ColCOUNT))
	for i := range names {
		names[i] = imgui.StyleColorName(imgui.Col(i))
	}
	return names
}

func (v *ImGuiView) ColorSwatch(idx int) {
	sz := imgui.TextLineHeight()
	p := imgui.CursorScreenPos()
	col := imgui.ColorU32Vec4(*imgui.StyleColorVec4(imgui.Col(idx)))
	imgui.WindowDrawList().AddRectFilledV(p, imgui.NewVec2(p.X+sz, p.Y+sz), col, 0, 0)
	imgui.Dummy(imgui.NewVec2(sz, sz))
}

func (v *ImGuiView) Button(label string, width float32) bool {
	return imgui.ButtonV(label, imgui.NewVec2(width, 0))
}

func (v *ImGuiView) Checkbox(label string, b *bool) bool {
	return imgui.Checkbox(label, b)
}

func (v *ImGuiView) SliderFloat(label string, f *float32, min, max float32) bool {
	return imgui.SliderFloat(label, f, min, max)
}

func (v *ImGuiView) InputFloat(label string, f *float32, step float32) bool {
	return imgui.InputFloatV(label, f, step, step*10, "%.3f", imgui.InputTextFlagsNone)
}

// DragFloat passes 0/0 bounds, which ImGui treats as unclamped.
func (v *ImGuiView) DragFloat(label string, f *float32, speed float32) bool {
	return imgui.DragFloatV(label, f, speed, 0, 0, "%.3f", imgui.SliderFlagsNone)
}

func (v *ImGuiView) DragFloat3(label string, f *[3]float32, speed float32) bool {
	return imgui.DragFloat3V(label, f, speed, 0, 0, "%.3f", imgui.SliderFlagsNone)
}

func (v *ImGuiView) Combo(label string, current *int32, items []string) bool {
	return imgui.ComboStr(label, current, strings.Join(items, "\x00")+"\x00")
}

func (v *ImGuiView) ShowMetricsWindow(open *bool)     { imgui.ShowMetricsWindowV(open) }
func (v *ImGuiView) ShowDebugLogWindow(open *bool)    { imgui.ShowDebugLogWindowV(open) }
func (v *ImGuiView) ShowIDStackToolWindow(open *bool) { imgui.ShowIDStackToolWindowV(open) }
func (v *ImGuiView) ShowAboutWindow(open *bool)       { imgui.ShowAboutWindowV(open) }
func (v *ImGuiView) ShowStyleEditor()                 { imgui.ShowStyleEditor() }

func (v *ImGuiView) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

func (v *ImGuiView) WantCaptureMouse() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}
