package overlay

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sceneview/internal/gui/guitest"
	"github.com/Faultbox/sceneview/pkg/scene"
)

func TestRenderCamerasEditsInPlace(t *testing.T) {
	cams := []scene.Camera{*scene.NewCamera("main", mgl32.Vec3{0, 0, 5}, 16.0 / 9.0)}

	rec := guitest.New()
	rec.Open["0"] = true
	rec.SetFloat("FOV", 500)
	rec.SetFloat("Pitch", -120)
	rec.SetFloat3("Position", [3]float32{1, 2, 3})

	RenderCameras(rec, cams)

	// No clamping: out of range values are kept as typed.
	assert.Equal(t, float32(500), cams[0].FOV)
	assert.Equal(t, float32(-120), cams[0].Pitch)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cams[0].Position)
	assert.True(t, rec.Balanced())
}

func TestRenderCamerasCollapsed(t *testing.T) {
	cams := []scene.Camera{*scene.NewCamera("main", mgl32.Vec3{}, 1)}
	before := cams[0]

	rec := guitest.New()
	rec.SetFloat("FOV", 10)
	RenderCameras(rec, cams)

	assert.Equal(t, before, cams[0])
	assert.True(t, rec.Has(guitest.KindTreeNode, "Camera 0: main"))
	assert.False(t, rec.Has(guitest.KindWidget, "FOV"))
}

func TestRenderCamerasVectors(t *testing.T) {
	cams := []scene.Camera{*scene.NewCamera("main", mgl32.Vec3{}, 1)}

	rec := guitest.New()
	rec.OpenAll = true
	RenderCameras(rec, cams)

	assert.Contains(t, rec.Texts(), "World Up: 0.000 1.000 0.000")
	assert.True(t, rec.Has(guitest.KindTreeNode, "View"))
	assert.True(t, rec.Has(guitest.KindTreeNode, "Projection"))
}

func TestRenderCamerasEmpty(t *testing.T) {
	rec := guitest.New()
	RenderCameras(rec, nil)
	assert.Equal(t, []string{"No cameras"}, rec.Texts())
}
