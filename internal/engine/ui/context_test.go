package ui

import (
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"
)

type fakePlatform struct {
	shouldClose []bool
}

func (f *fakePlatform) SetAfterCreateContextHook(func())  {}
func (f *fakePlatform) SetBeforeDestroyContextHook(func()) {}
func (f *fakePlatform) SetBgColor(imgui.Vec4)             {}
func (f *fakePlatform) CreateWindow(string, int, int)     {}
func (f *fakePlatform) SetWindowTitle(string)             {}
func (f *fakePlatform) SetCloseCallback(func())           {}
func (f *fakePlatform) Run(func())                        {}

func (f *fakePlatform) SetShouldClose(v bool) {
	f.shouldClose = append(f.shouldClose, v)
}

func TestWindowCloseIsRouted(t *testing.T) {
	p := &fakePlatform{}
	c := &Context{platform: p}

	requests := 0
	c.OnCloseRequest(func() { requests++ })

	c.handleClose()
	if requests != 1 {
		t.Fatalf("expected close request to be routed once, got %d", requests)
	}
	if len(p.shouldClose) != 1 || p.shouldClose[0] {
		t.Errorf("expected window close to be cancelled, got %v", p.shouldClose)
	}

	// Once the application decides to close, the window close goes through.
	c.RequestClose()
	c.handleClose()
	if requests != 1 {
		t.Errorf("expected no request after RequestClose, got %d", requests)
	}
	if got := p.shouldClose[len(p.shouldClose)-1]; !got {
		t.Error("expected window to stay closing")
	}
}

func TestWindowCloseWithoutHandler(t *testing.T) {
	p := &fakePlatform{}
	c := &Context{platform: p}

	c.handleClose()
	if len(p.shouldClose) != 0 {
		t.Errorf("expected platform default close, got %v", p.shouldClose)
	}
}
