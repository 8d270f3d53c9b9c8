// Package ui binds the overlay to Dear ImGui through cimgui-go: the window
// and context lifecycle, the gui.View implementation and screenshots.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/glfwbackend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Platform backends accepted in Config.Backend.
const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

// Config describes the window and GUI context to create.
type Config struct {
	Title    string
	Width    int
	Height   int
	Backend  string // BackendGLFW (default) or BackendSDL
	FontPath string // optional TTF; the ImGui default font is used when empty
	FontSize float32
}

// platform is the part of backend.Backend used here, independent of the
// backend's window flag type.
type platform interface {
	SetAfterCreateContextHook(func())
	SetBeforeDestroyContextHook(func())
	SetBgColor(imgui.Vec4)
	CreateWindow(title string, width, height int)
	SetWindowTitle(title string)
	SetShouldClose(bool)
	SetCloseCallback(func())
	Run(func())
}

// Context owns the platform window, the GL bindings and the ImGui context.
// It is created by Open and must be released with Close on every exit path.
type Context struct {
	cfg      Config
	log      *zap.Logger
	platform platform

	onClose func()
	closing bool

	ran    bool
	alive  bool
	closed bool
}

// Open creates the window and the ImGui context.
func Open(cfg Config, log *zap.Logger) (*Context, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Context{cfg: cfg, log: log}

	var err error
	switch cfg.Backend {
	case BackendSDL:
		var b backend.Backend[sdlbackend.SDLWindowFlags]
		b, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
		c.platform = b
	case BackendGLFW, "":
		var b backend.Backend[glfwbackend.GLFWWindowFlags]
		b, err = backend.CreateBackend(glfwbackend.NewGLFWBackend())
		c.platform = b
	default:
		return nil, fmt.Errorf("unknown gui backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	c.platform.SetAfterCreateContextHook(c.setup)
	c.platform.SetBeforeDestroyContextHook(func() {
		c.alive = false
		c.log.Debug("imgui context destroyed")
	})
	c.platform.SetCloseCallback(c.handleClose)
	c.platform.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	c.platform.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	if err := gl.Init(); err != nil {
		c.Close()
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	c.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("backend", cfg.Backend),
	)

	return c, nil
}

// setup runs once the ImGui context exists.
func (c *Context) setup() {
	c.alive = true

	io := imgui.CurrentIO()
	io.SetConfigFlags(io.ConfigFlags() |
		imgui.ConfigFlagsNavEnableKeyboard |
		imgui.ConfigFlagsNavEnableGamepad |
		imgui.ConfigFlagsDockingEnable)
	imgui.StyleColorsDark()

	c.loadFont()
}

func (c *Context) loadFont() {
	if c.cfg.FontPath == "" {
		return
	}
	if _, err := os.Stat(c.cfg.FontPath); err != nil {
		c.log.Warn("font not found, using default", zap.String("path", c.cfg.FontPath))
		return
	}

	size := c.cfg.FontSize
	if size <= 0 {
		size = 16
	}

	fonts := imgui.CurrentIO().Fonts()
	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	if font := fonts.AddFontFromFileTTFV(c.cfg.FontPath, size, fontCfg, fonts.GlyphRangesDefault()); font == nil {
		c.log.Warn("failed to load font", zap.String("path", c.cfg.FontPath))
		return
	}
	c.log.Info("loaded font", zap.String("path", c.cfg.FontPath), zap.Float32("size", size))
}

// Run drives the frame loop until the window closes. frame is called once
// per frame between NewFrame and Render.
func (c *Context) Run(frame func()) {
	c.ran = true
	c.platform.Run(frame)
}

// OnCloseRequest routes window close requests (the title bar close box,
// Alt+F4) to fn instead of closing. The window then stays open until
// RequestClose is called.
func (c *Context) OnCloseRequest(fn func()) {
	c.onClose = fn
}

func (c *Context) handleClose() {
	if c.onClose == nil || c.closing {
		return
	}
	c.platform.SetShouldClose(false)
	c.onClose()
}

// RequestClose asks the platform loop to stop after the current frame.
func (c *Context) RequestClose() {
	c.closing = true
	c.platform.SetShouldClose(true)
}

// SetTitle updates the window title.
func (c *Context) SetTitle(title string) {
	c.platform.SetWindowTitle(title)
}

// Close releases the ImGui context if the frame loop did not already do so.
// It is safe to call more than once.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true

	if c.alive && !c.ran {
		imgui.DestroyContext()
		c.alive = false
	}
	c.log.Debug("gui context closed")
}
