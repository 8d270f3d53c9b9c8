// Package overlay is the debug overlay drawn over the scene viewer: the main
// menu, tool windows, scene inspectors and the quit confirmation.
//
// Everything runs on the frame thread. The overlay never mutates scene data
// except the camera fields edited in the camera inspector.
package overlay

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/gui"
	"github.com/Faultbox/sceneview/pkg/scene"
	"github.com/Faultbox/sceneview/pkg/taskqueue"
)

// Frame is the host state the overlay draws this frame.
type Frame struct {
	Models  []scene.Model
	Cameras []scene.Camera
	Tasks   *taskqueue.Snapshot
}

// Overlay owns the overlay state that persists across frames.
type Overlay struct {
	Options Options

	log       *zap.Logger
	lastClose CloseState
	frames    uint64

	wantKeyboard bool
	wantMouse    bool

	failure string
}

// New creates an overlay with the configured startup state.
func New(cfg config.OverlayConfig, log *zap.Logger) *Overlay {
	if log == nil {
		log = zap.NewNop()
	}
	o := &Overlay{
		Options: NewOptions(cfg),
		log:     log,
	}
	o.lastClose = o.Options.File.State()
	return o
}

// Draw runs one frame of the overlay.
func (o *Overlay) Draw(v gui.View, f Frame) {
	o.frames++

	ShowMainMenu(v, &o.Options)
	ShowErrorPopup(v, &o.failure)

	tools := &o.Options.Tools
	if tools.ModelTool {
		ShowModelInspector(v, &tools.ModelTool, f.Models)
	}
	if tools.CameraTool {
		ShowCameraInspector(v, &tools.CameraTool, f.Cameras)
	}
	if tools.TaskTool {
		ShowTaskInspector(v, &tools.TaskTool, f.Tasks)
	}

	o.wantKeyboard = v.WantCaptureKeyboard()
	o.wantMouse = v.WantCaptureMouse()

	if state := o.Options.File.State(); state != o.lastClose {
		o.log.Info("close state changed",
			zap.Stringer("from", o.lastClose),
			zap.Stringer("to", state),
			zap.Uint64("frame", o.frames),
		)
		o.lastClose = state
	}
}

// WantCaptureKeyboard reports whether the last frame's keyboard input
// belonged to the overlay. The host must not treat it as scene input.
func (o *Overlay) WantCaptureKeyboard() bool { return o.wantKeyboard }

// WantCaptureMouse is WantCaptureKeyboard for the mouse.
func (o *Overlay) WantCaptureMouse() bool { return o.wantMouse }

// RequestQuit starts the close flow as if Quit had been picked.
func (o *Overlay) RequestQuit() { o.Options.File.RequestQuit() }

// ShouldClose reports whether the host should exit.
func (o *Overlay) ShouldClose() bool { return o.Options.File.ShouldClose }

// SaveOnClose reports whether the host should save before exiting.
func (o *Overlay) SaveOnClose() bool {
	return o.Options.File.ShouldClose && o.Options.File.SaveChanges
}

// AbortClose cancels a resolved close after the host failed to save. The
// session keeps running with unsaved changes and err is shown to the user.
func (o *Overlay) AbortClose(err error) {
	o.log.Warn("close aborted", zap.Error(err))
	o.Options.File.Reset(true)
	o.failure = err.Error()
}

// Failure returns the error message being shown, if any.
func (o *Overlay) Failure() string { return o.failure }

// SetUnsavedChanges tells the overlay whether there is work to protect.
func (o *Overlay) SetUnsavedChanges(unsaved bool) {
	o.Options.File.UnsavedChanges = unsaved
}

// Paused reports whether the user paused the viewer from the Tools menu.
func (o *Overlay) Paused() bool { return o.Options.Paused }

// TakeFileRequests returns and clears pending File menu requests.
func (o *Overlay) TakeFileRequests() FileRequests {
	return o.Options.Menu.TakeRequests()
}

// AddRecent records a file in File > Open Recent.
func (o *Overlay) AddRecent(path string) {
	o.Options.Menu.AddRecent(path)
}
