package overlay

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/gui/guitest"
	"github.com/Faultbox/sceneview/pkg/scene"
	"github.com/Faultbox/sceneview/pkg/taskqueue"
)

func testFrame() Frame {
	q := taskqueue.New(2)
	_ = q.Push(taskqueue.Task{Name: "load"})
	snap := q.Snapshot()
	return Frame{
		Models:  []scene.Model{*scene.NewModel("cube")},
		Cameras: []scene.Camera{*scene.NewCamera("main", mgl32.Vec3{0, 0, 3}, 1)},
		Tasks:   &snap,
	}
}

func TestOverlayCapturePassthrough(t *testing.T) {
	o := New(config.OverlayConfig{}, nil)
	rec := guitest.New()

	o.Draw(rec, testFrame())
	assert.False(t, o.WantCaptureKeyboard())
	assert.False(t, o.WantCaptureMouse())

	rec.CaptureKeyboard = true
	rec.NewFrame()
	o.Draw(rec, testFrame())
	assert.True(t, o.WantCaptureKeyboard())
	assert.False(t, o.WantCaptureMouse())
}

func TestOverlayDrawsOpenInspectors(t *testing.T) {
	o := New(config.OverlayConfig{Tools: config.ToolsConfig{Models: true, Tasks: true}}, nil)
	rec := guitest.New()

	o.Draw(rec, testFrame())

	assert.True(t, rec.Has(guitest.KindWindow, titleModels))
	assert.True(t, rec.Has(guitest.KindWindow, titleTasks))
	assert.False(t, rec.Has(guitest.KindWindow, titleCameras))
	assert.Contains(t, rec.Texts(), "[0] load")
	assert.True(t, rec.Balanced())
}

func TestOverlayQuitAndSave(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	o := New(config.OverlayConfig{AssumeUnsaved: true}, zap.New(core))
	rec := guitest.New()
	rec.AllMenus = true

	rec.Click("Quit")
	o.Draw(rec, testFrame())
	assert.False(t, o.ShouldClose())

	// The modal stays up until answered.
	for i := 0; i < 3; i++ {
		rec.NewFrame()
		o.Draw(rec, testFrame())
		assert.True(t, rec.PopupOpen(closePopupID))
		assert.False(t, o.ShouldClose())
	}

	rec.NewFrame()
	rec.Click("Save and Exit")
	o.Draw(rec, testFrame())

	assert.True(t, o.ShouldClose())
	assert.True(t, o.SaveOnClose())
	assert.False(t, rec.PopupOpen(closePopupID))

	entries := logs.FilterMessage("close state changed").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "idle", entries[0].ContextMap()["from"])
	assert.Equal(t, "confirm-pending", entries[0].ContextMap()["to"])
	assert.Equal(t, "resolved-save", entries[1].ContextMap()["to"])
}

func TestOverlayQuitWithoutUnsavedChanges(t *testing.T) {
	o := New(config.OverlayConfig{}, nil)
	rec := guitest.New()

	o.RequestQuit()
	o.Draw(rec, testFrame())

	assert.True(t, o.ShouldClose())
	assert.False(t, o.SaveOnClose())
	assert.Zero(t, rec.PopupOpenCalls(closePopupID))
}

func TestOverlayUnsavedChangesToggle(t *testing.T) {
	o := New(config.OverlayConfig{AssumeUnsaved: true}, nil)
	o.SetUnsavedChanges(false)
	o.RequestQuit()

	o.Draw(guitest.New(), Frame{})
	assert.True(t, o.ShouldClose())
}

func TestOverlayPauseAndRequests(t *testing.T) {
	o := New(config.OverlayConfig{}, nil)
	rec := guitest.New()
	rec.AllMenus = true

	rec.Click("Pause")
	rec.Click("Save")
	o.Draw(rec, Frame{})

	assert.True(t, o.Paused())
	assert.True(t, o.TakeFileRequests().Save)
	assert.False(t, o.TakeFileRequests().Any())

	o.AddRecent("scene.yaml")
	assert.Equal(t, []string{"scene.yaml"}, o.Options.Menu.Recent)
}

func TestOverlayAbortClose(t *testing.T) {
	o := New(config.OverlayConfig{AssumeUnsaved: true}, nil)
	rec := guitest.New()

	o.RequestQuit()
	o.Draw(rec, Frame{})
	rec.NewFrame()
	rec.Click("Save and Exit")
	o.Draw(rec, Frame{})
	require.True(t, o.SaveOnClose())

	o.AbortClose(errors.New("disk full"))
	assert.False(t, o.ShouldClose())
	assert.False(t, o.SaveOnClose())
	assert.Equal(t, CloseIdle, o.Options.File.State())
	assert.True(t, o.Options.File.UnsavedChanges)

	// The error stays up until acknowledged.
	for i := 0; i < 2; i++ {
		rec.NewFrame()
		o.Draw(rec, Frame{})
		assert.True(t, rec.PopupOpen(errorPopupID))
		assert.Contains(t, rec.Texts(), "disk full")
	}

	rec.NewFrame()
	rec.Click("OK")
	o.Draw(rec, Frame{})
	assert.Empty(t, o.Failure())
	assert.False(t, rec.PopupOpen(errorPopupID))
	assert.True(t, rec.Balanced())

	// Quitting again asks again.
	o.RequestQuit()
	rec.NewFrame()
	o.Draw(rec, Frame{})
	assert.True(t, rec.PopupOpen(closePopupID))
}
