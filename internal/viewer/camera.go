package viewer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/pkg/scene"
)

// mouseLook turns right-button drags outside the overlay into camera look.
type mouseLook struct {
	last   mgl32.Vec2
	active bool
}

// update feeds one frame of mouse state. It reports whether the camera
// moved. Drags the overlay captured never reach the camera.
func (m *mouseLook) update(cam *scene.Camera, pos mgl32.Vec2, dragging, captured bool) bool {
	if !dragging || captured {
		m.active = false
		return false
	}
	if !m.active {
		m.active = true
		m.last = pos
		return false
	}

	d := pos.Sub(m.last)
	m.last = pos
	if d == (mgl32.Vec2{}) {
		return false
	}
	// Screen y grows downwards.
	cam.Look(d.X(), -d.Y())
	return true
}

// updateCameras applies the window aspect ratio and recomputes matrices.
func updateCameras(cams []scene.Camera, aspect float32) {
	for i := range cams {
		cams[i].Aspect = aspect
		cams[i].Update()
	}
}

func aspectRatio(width, height float32) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return width / height
}
