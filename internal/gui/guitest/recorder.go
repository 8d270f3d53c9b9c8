// Package guitest provides an in-memory gui.View that records what a frame
// drew and replays scripted input, for testing overlay code without a
// window or GPU.
package guitest

import (
	"strings"

	"github.com/Faultbox/sceneview/internal/gui"
)

// Kind classifies a recorded event.
type Kind int

const (
	KindMenuBar Kind = iota
	KindMenu
	KindMenuItem
	KindWindow
	KindTreeNode
	KindPopupOpen
	KindPopup
	KindText
	KindSeparator
	KindButton
	KindWidget
	KindToolWindow
	KindChild
	KindSwatch
)

// Event is one drawing call.
type Event struct {
	Kind  Kind
	ID    string // tree nodes: full ID path; otherwise the label
	Label string
	Depth int // ID stack depth at the time of the call
}

// Recorder implements gui.View. The zero value is not usable; call New.
type Recorder struct {
	Events []Event

	// Expanded tree nodes by full ID path ("Window/0/RootNode/0.1").
	Open    map[string]bool
	OpenAll bool

	// Menus that report open. AllMenus opens every enabled menu.
	OpenMenus map[string]bool
	AllMenus  bool

	CaptureKeyboard bool
	CaptureMouse    bool

	// ColorNames is the style color table reported by StyleColorNames.
	ColorNames []string

	clicks      map[string]int
	floatEdits  map[string]float32
	vec3Edits   map[string][3]float32
	comboEdits  map[string]int32
	popups      map[string]bool
	popupStack  []string
	stack       []string
	openedCount map[string]int
}

var _ gui.View = (*Recorder)(nil)

// New returns an empty recorder with every tree node collapsed.
func New() *Recorder {
	return &Recorder{
		Open:        make(map[string]bool),
		OpenMenus:   make(map[string]bool),
		clicks:      make(map[string]int),
		floatEdits:  make(map[string]float32),
		vec3Edits:   make(map[string][3]float32),
		comboEdits:  make(map[string]int32),
		popups:      make(map[string]bool),
		openedCount: make(map[string]int),
		ColorNames:  []string{"Text", "TextDisabled", "WindowBg"},
	}
}

// NewFrame clears the recorded events. Expansion state, open popups and
// pending input are kept, as a real GUI keeps them across frames.
func (r *Recorder) NewFrame() {
	r.Events = r.Events[:0]
}

// Balanced reports whether every push onto the ID stack was popped.
func (r *Recorder) Balanced() bool {
	return len(r.stack) == 0 && len(r.popupStack) == 0
}

// Click queues a click on the item, button or checkbox with this label.
// Clicks are consumed by the next matching draw call.
func (r *Recorder) Click(label string) { r.clicks[label]++ }

// CloseWindow queues a click on the close box of a window or tool window.
func (r *Recorder) CloseWindow(title string) { r.clicks["close:"+title]++ }

// SetFloat queues an edit for the float widget with this label.
func (r *Recorder) SetFloat(label string, v float32) { r.floatEdits[label] = v }

// SetFloat3 queues an edit for the 3-component widget with this label.
func (r *Recorder) SetFloat3(label string, v [3]float32) { r.vec3Edits[label] = v }

// SetCombo queues a selection for the combo with this label.
func (r *Recorder) SetCombo(label string, v int32) { r.comboEdits[label] = v }

// PopupOpen reports whether the popup with this id is open.
func (r *Recorder) PopupOpen(id string) bool { return r.popups[id] }

// PopupOpenCalls reports how many times OpenPopup was called for id.
func (r *Recorder) PopupOpenCalls(id string) int { return r.openedCount[id] }

// Find returns the events of the given kind.
func (r *Recorder) Find(kind Kind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of events of kind whose label starts with prefix.
func (r *Recorder) Count(kind Kind, prefix string) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind && strings.HasPrefix(e.Label, prefix) {
			n++
		}
	}
	return n
}

// Texts returns every Text and TextDisabled line in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, e := range r.Find(KindText) {
		out = append(out, e.Label)
	}
	return out
}

// Has reports whether an event of kind with exactly this label was drawn.
func (r *Recorder) Has(kind Kind, label string) bool {
	for _, e := range r.Events {
		if e.Kind == kind && e.Label == label {
			return true
		}
	}
	return false
}

func (r *Recorder) record(kind Kind, id, label string) {
	r.Events = append(r.Events, Event{Kind: kind, ID: id, Label: label, Depth: len(r.stack)})
}

func (r *Recorder) take(label string) bool {
	if r.clicks[label] == 0 {
		return false
	}
	r.clicks[label]--
	if r.clicks[label] == 0 {
		delete(r.clicks, label)
	}
	return true
}

func (r *Recorder) push(id string) { r.stack = append(r.stack, id) }

func (r *Recorder) pop() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

func (r *Recorder) path(id string) string {
	if len(r.stack) == 0 {
		return id
	}
	return strings.Join(r.stack, "/") + "/" + id
}

func (r *Recorder) BeginMainMenuBar() bool {
	r.record(KindMenuBar, "", "")
	return true
}

func (r *Recorder) EndMainMenuBar() {}

func (r *Recorder) BeginMenu(label string, enabled bool) bool {
	r.record(KindMenu, label, label)
	return enabled && (r.AllMenus || r.OpenMenus[label])
}

func (r *Recorder) EndMenu() {}

func (r *Recorder) MenuItem(label, shortcut string, selected, enabled bool) bool {
	r.record(KindMenuItem, label, label)
	return enabled && r.take(label)
}

func (r *Recorder) MenuToggle(label, shortcut string, open *bool, enabled bool) bool {
	r.record(KindMenuItem, label, label)
	if enabled && r.take(label) {
		*open = !*open
		return true
	}
	return false
}

func (r *Recorder) BeginWindow(title string, open *bool) bool {
	r.record(KindWindow, title, title)
	if open != nil && r.take("close:"+title) {
		*open = false
	}
	r.push(title)
	return true
}

func (r *Recorder) EndWindow() { r.pop() }

func (r *Recorder) TreeNode(id, label string) bool {
	full := r.path(id)
	r.record(KindTreeNode, full, label)
	if r.OpenAll || r.Open[full] {
		r.push(id)
		return true
	}
	return false
}

func (r *Recorder) TreePop() { r.pop() }

func (r *Recorder) OpenPopup(id string) {
	r.record(KindPopupOpen, id, id)
	r.openedCount[id]++
	r.popups[id] = true
}

func (r *Recorder) BeginPopupModal(id string) bool {
	if !r.popups[id] {
		return false
	}
	r.record(KindPopup, id, id)
	r.popupStack = append(r.popupStack, id)
	r.push(id)
	return true
}

func (r *Recorder) CloseCurrentPopup() {
	if n := len(r.popupStack); n > 0 {
		delete(r.popups, r.popupStack[n-1])
	}
}

func (r *Recorder) EndPopup() {
	if n := len(r.popupStack); n > 0 {
		r.popupStack = r.popupStack[:n-1]
	}
	r.pop()
}

func (r *Recorder) Separator() { r.record(KindSeparator, "", "") }
func (r *Recorder) SameLine()  {}

func (r *Recorder) Text(text string)         { r.record(KindText, "", text) }
func (r *Recorder) TextDisabled(text string) { r.record(KindText, "", text) }

func (r *Recorder) BeginChild(id string, height float32) bool {
	r.record(KindChild, r.path(id), id)
	r.push(id)
	return true
}

func (r *Recorder) EndChild() { r.pop() }

// StyleColorNames returns ColorNames.
func (r *Recorder) StyleColorNames() []string { return r.ColorNames }

func (r *Recorder) ColorSwatch(idx int) {
	label := ""
	if idx >= 0 && idx < len(r.ColorNames) {
		label = r.ColorNames[idx]
	}
	r.record(KindSwatch, label, label)
}

func (r *Recorder) Button(label string, width float32) bool {
	r.record(KindButton, label, label)
	return r.take(label)
}

func (r *Recorder) Checkbox(label string, v *bool) bool {
	r.record(KindWidget, label, label)
	if r.take(label) {
		*v = !*v
		return true
	}
	return false
}

func (r *Recorder) float(label string, v *float32) bool {
	r.record(KindWidget, label, label)
	nv, ok := r.floatEdits[label]
	if !ok {
		return false
	}
	delete(r.floatEdits, label)
	*v = nv
	return true
}

func (r *Recorder) SliderFloat(label string, v *float32, min, max float32) bool {
	return r.float(label, v)
}

func (r *Recorder) InputFloat(label string, v *float32, step float32) bool {
	return r.float(label, v)
}

func (r *Recorder) DragFloat(label string, v *float32, speed float32) bool {
	return r.float(label, v)
}

func (r *Recorder) DragFloat3(label string, v *[3]float32, speed float32) bool {
	r.record(KindWidget, label, label)
	nv, ok := r.vec3Edits[label]
	if !ok {
		return false
	}
	delete(r.vec3Edits, label)
	*v = nv
	return true
}

func (r *Recorder) Combo(label string, current *int32, items []string) bool {
	r.record(KindWidget, label, label)
	nv, ok := r.comboEdits[label]
	if !ok {
		return false
	}
	delete(r.comboEdits, label)
	*current = nv
	return true
}

func (r *Recorder) tool(name string, open *bool) {
	r.record(KindToolWindow, name, name)
	if open != nil && r.take("close:"+name) {
		*open = false
	}
}

func (r *Recorder) ShowMetricsWindow(open *bool)     { r.tool("Metrics", open) }
func (r *Recorder) ShowDebugLogWindow(open *bool)    { r.tool("Debug Log", open) }
func (r *Recorder) ShowIDStackToolWindow(open *bool) { r.tool("ID Stack Tool", open) }
func (r *Recorder) ShowAboutWindow(open *bool)       { r.tool("About", open) }
func (r *Recorder) ShowStyleEditor()                 { r.tool("Style Editor", nil) }

func (r *Recorder) WantCaptureKeyboard() bool { return r.CaptureKeyboard }
func (r *Recorder) WantCaptureMouse() bool    { return r.CaptureMouse }
