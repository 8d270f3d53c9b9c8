package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sceneview/pkg/scene"
)

func TestMouseLook(t *testing.T) {
	cam := scene.NewCamera("main", mgl32.Vec3{}, 1)
	yaw, pitch := cam.Yaw, cam.Pitch
	var look mouseLook

	// The first dragging frame only anchors the cursor.
	assert.False(t, look.update(cam, mgl32.Vec2{100, 100}, true, false))
	assert.Equal(t, yaw, cam.Yaw)

	assert.True(t, look.update(cam, mgl32.Vec2{110, 90}, true, false))
	assert.InDelta(t, yaw+10*cam.Sensitivity, cam.Yaw, 1e-5)
	assert.InDelta(t, pitch+10*cam.Sensitivity, cam.Pitch, 1e-5)

	// Releasing the button resets the anchor.
	assert.False(t, look.update(cam, mgl32.Vec2{500, 500}, false, false))
	assert.False(t, look.update(cam, mgl32.Vec2{600, 600}, true, false))
}

func TestMouseLookCapturedByOverlay(t *testing.T) {
	cam := scene.NewCamera("main", mgl32.Vec3{}, 1)
	before := *cam
	var look mouseLook

	look.update(cam, mgl32.Vec2{0, 0}, true, true)
	moved := look.update(cam, mgl32.Vec2{50, 50}, true, true)

	assert.False(t, moved)
	assert.Equal(t, before, *cam)
}

func TestUpdateCamerasAspect(t *testing.T) {
	cams := []scene.Camera{*scene.NewCamera("main", mgl32.Vec3{0, 0, 5}, 1)}

	updateCameras(cams, aspectRatio(1920, 1080))

	want := mgl32.Perspective(mgl32.DegToRad(cams[0].FOV), 16.0/9.0, cams[0].Near, cams[0].Far)
	assert.InDelta(t, 16.0/9.0, cams[0].Aspect, 1e-5)
	assert.True(t, cams[0].Projection.ApproxEqualThreshold(want, 1e-5))
}

func TestAspectRatioDegenerate(t *testing.T) {
	assert.Equal(t, float32(1), aspectRatio(800, 0))
	assert.Equal(t, float32(1), aspectRatio(0, 0))
	assert.Equal(t, float32(2), aspectRatio(800, 400))
}
