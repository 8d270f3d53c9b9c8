// Package viewer runs the scene viewer: the GUI context, the open scene
// document, the background task queue and the debug overlay.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/ui"
	"github.com/Faultbox/sceneview/internal/overlay"
	"github.com/Faultbox/sceneview/pkg/scene"
	"github.com/Faultbox/sceneview/pkg/taskqueue"
)

// untitledPath is where an unnamed scene is saved when quitting with
// "Save and Exit".
const untitledPath = "untitled.yaml"

// Viewer is the main viewer instance.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	gui     *ui.Context
	view    *ui.ImGuiView
	overlay *overlay.Overlay
	shots   *ui.Screenshotter

	doc     *scene.Document
	session *session
	aspect  float32
	look    mouseLook

	queue   *taskqueue.Queue
	cancel  context.CancelFunc
	workers sync.WaitGroup

	// Paths picked in native dialogs, applied on the frame thread.
	pendingOpen   chan string
	pendingSaveAs chan string
}

// New creates the window and starts the task workers. The scene at
// cfg.Scene.Path is opened when set; otherwise a demo scene is shown.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	v := &Viewer{
		cfg:           cfg,
		log:           log,
		view:          ui.NewImGuiView(),
		overlay:       overlay.New(cfg.Overlay, log.Named("overlay")),
		shots:         ui.NewScreenshotter(cfg.Scene.ScreenshotDir, "sceneview"),
		queue:         taskqueue.New(cfg.Tasks.Capacity),
		pendingOpen:   make(chan string, 1),
		pendingSaveAs: make(chan string, 1),
		aspect:        aspectRatio(float32(cfg.Window.Width), float32(cfg.Window.Height)),
	}

	var err error
	v.gui, err = ui.Open(ui.Config{
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Backend:  cfg.Window.Backend,
		FontPath: cfg.Window.FontPath,
		FontSize: cfg.Window.FontSize,
	}, log.Named("ui"))
	if err != nil {
		return nil, fmt.Errorf("failed to open gui: %w", err)
	}

	if cfg.Scene.Path != "" {
		if err := v.open(cfg.Scene.Path); err != nil {
			v.gui.Close()
			return nil, err
		}
	} else {
		v.setDocument(demoDocument(v.aspect))
	}
	v.gui.OnCloseRequest(v.overlay.RequestQuit)

	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	for i := 0; i < cfg.Tasks.Workers; i++ {
		v.workers.Add(1)
		go func(id int) {
			defer v.workers.Done()
			wlog := log.Named("worker").With(zap.Int("id", id))
			err := taskqueue.Work(ctx, v.queue, cfg.Tasks.Idle, func(t taskqueue.Task, err error) {
				wlog.Warn("task failed", zap.String("task", t.Name), zap.Error(err))
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				wlog.Error("worker stopped", zap.Error(err))
			}
		}(i)
	}

	log.Info("viewer initialized successfully")
	return v, nil
}

// Run drives the frame loop until the user confirms quitting or the
// window is closed.
func (v *Viewer) Run() error {
	v.log.Info("starting frame loop")
	v.gui.Run(v.frame)
	return nil
}

// Close stops the workers and releases the GUI context.
func (v *Viewer) Close() {
	if v.cancel != nil {
		v.cancel()
		v.workers.Wait()
	}
	if v.gui != nil {
		v.gui.Close()
	}
	v.log.Info("viewer closed")
}

// Tools returns the tool window visibility to persist for the next run.
func (v *Viewer) Tools() config.ToolsConfig {
	return v.overlay.Options.Tools.ToolsConfig()
}

func (v *Viewer) frame() {
	if !v.overlay.WantCaptureKeyboard() && imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		v.screenshot()
	}

	v.applyPending()

	size := imgui.CurrentIO().DisplaySize()
	v.aspect = aspectRatio(size.X, size.Y)

	if len(v.doc.Cameras) > 0 {
		pos := imgui.MousePos()
		v.look.update(&v.doc.Cameras[0], mgl32.Vec2{pos.X, pos.Y},
			imgui.IsMouseDragging(imgui.MouseButtonRight), v.overlay.WantCaptureMouse())
	}
	if !v.overlay.Paused() {
		updateCameras(v.doc.Cameras, v.aspect)
	}

	snap := v.queue.Snapshot()
	v.overlay.SetUnsavedChanges(v.cfg.Overlay.AssumeUnsaved || v.session.dirty(v.doc))
	v.overlay.Draw(v.view, overlay.Frame{
		Models:  v.doc.Models,
		Cameras: v.doc.Cameras,
		Tasks:   &snap,
	})

	v.handleFileRequests(v.overlay.TakeFileRequests())

	if v.overlay.ShouldClose() && finishClose(v.overlay, v.saveForExit) {
		v.gui.RequestClose()
	}
}

// finishClose runs the save the user asked for when quitting and reports
// whether the window may close. A failed save keeps the session open and
// reports the error through the overlay.
func finishClose(o *overlay.Overlay, save func() error) bool {
	if o.SaveOnClose() {
		if err := save(); err != nil {
			o.AbortClose(fmt.Errorf("could not save before exiting: %w", err))
			return false
		}
	}
	return true
}

// saveForExit saves the document, falling back to untitledPath for a
// document that was never saved.
func (v *Viewer) saveForExit() error {
	if v.doc.Path != "" {
		return v.save()
	}
	if err := v.doc.SaveTo(untitledPath); err != nil {
		return err
	}
	v.saved()
	return nil
}

func (v *Viewer) screenshot() {
	path, err := v.shots.Capture()
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) handleFileRequests(r overlay.FileRequests) {
	if !r.Any() {
		return
	}

	switch {
	case r.New:
		v.setDocument(demoDocument(v.aspect))
	case r.OpenPath != "":
		if err := v.open(r.OpenPath); err != nil {
			v.log.Error("open failed", zap.Error(err))
		}
	case r.Open:
		v.pickFile(v.pendingOpen, "Open Scene", false)
	}

	if r.Save {
		if v.doc.Path == "" {
			v.pickFile(v.pendingSaveAs, "Save Scene", true)
		} else if err := v.save(); err != nil {
			v.log.Error("save failed", zap.Error(err))
		}
	}
	if r.SaveAs {
		v.pickFile(v.pendingSaveAs, "Save Scene As", true)
	}
}

// pickFile shows a native file dialog off the frame thread and queues the
// chosen path.
func (v *Viewer) pickFile(out chan<- string, title string, save bool) {
	go func() {
		b := dialog.File().
			Filter("Scene Files", "yaml", "yml").
			Filter("All Files", "*").
			Title(title)

		var path string
		var err error
		if save {
			path, err = b.Save()
		} else {
			path, err = b.Load()
		}
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				v.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}

		select {
		case out <- path:
		default:
		}
	}()
}

func (v *Viewer) applyPending() {
	select {
	case path := <-v.pendingOpen:
		if err := v.open(path); err != nil {
			v.log.Error("open failed", zap.Error(err))
		}
	default:
	}

	select {
	case path := <-v.pendingSaveAs:
		if err := v.doc.SaveTo(path); err != nil {
			v.log.Error("save failed", zap.String("path", path), zap.Error(err))
			return
		}
		v.saved()
	default:
	}
}

func (v *Viewer) open(path string) error {
	doc, err := scene.Load(path)
	if err != nil {
		return fmt.Errorf("failed to open scene: %w", err)
	}
	v.setDocument(doc)
	v.overlay.AddRecent(path)
	v.gui.SetTitle(v.cfg.Window.Title + " - " + filepath.Base(path))
	v.log.Info("scene opened",
		zap.String("path", path),
		zap.Int("models", len(doc.Models)),
		zap.Int("cameras", len(doc.Cameras)),
	)
	return nil
}

func (v *Viewer) save() error {
	if err := v.doc.Save(); err != nil {
		return err
	}
	v.saved()
	return nil
}

func (v *Viewer) saved() {
	v.session = newSession(v.doc)
	v.overlay.AddRecent(v.doc.Path)
	v.log.Info("scene saved", zap.String("path", v.doc.Path))
}

func (v *Viewer) setDocument(doc *scene.Document) {
	v.doc = doc
	v.session = newSession(doc)
	v.enqueueIndexing(doc)
}

// enqueueIndexing queues one task per model that walks its node tree.
func (v *Viewer) enqueueIndexing(doc *scene.Document) {
	for i := range doc.Models {
		m := doc.Models[i]
		err := v.queue.Push(taskqueue.Task{
			Name: "index " + m.Name,
			Run: func(ctx context.Context) error {
				v.log.Debug("model indexed",
					zap.String("model", m.Name),
					zap.Stringer("id", m.ID),
					zap.Int("nodes", m.NodeCount()),
					zap.Int("meshes", len(m.Meshes)),
				)
				return ctx.Err()
			},
		})
		if err != nil {
			v.log.Warn("task not queued", zap.String("model", m.Name), zap.Error(err))
		}
	}
}

// demoDocument builds an unsaved scene with a small node tree.
func demoDocument(aspect float32) *scene.Document {
	m := scene.NewModel("demo")
	m.Meshes = []scene.Mesh{{
		ID:          "cube",
		Name:        "Cube",
		VertexCount: 24,
		FaceCount:   12,
		Instances:   []mgl32.Mat4{mgl32.Ident4(), mgl32.Translate3D(2, 0, 0)},
	}}
	m.Root.Meshes = []scene.MeshRef{{Mesh: 0, Instance: 0}}
	m.Root.Children = []scene.Node{
		{Name: "left", Transform: mgl32.Translate3D(-2, 0, 0)},
		{
			Name:      "right",
			Transform: mgl32.Translate3D(2, 0, 0),
			Meshes:    []scene.MeshRef{{Mesh: 0, Instance: 1}},
			Metadata:  []scene.Metadata{{Key: "tag", Value: "demo"}},
		},
	}

	return &scene.Document{
		Models:  []scene.Model{*m},
		Cameras: []scene.Camera{*scene.NewCamera("main", mgl32.Vec3{0, 2, 8}, aspect)},
	}
}
