package overlay

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/gui"
	"github.com/Faultbox/sceneview/pkg/scene"
)

// ShowCameraInspector draws the camera inspector window. The scalar camera
// fields are edited in place; nothing is clamped or validated.
func ShowCameraInspector(v gui.View, open *bool, cameras []scene.Camera) {
	if v.BeginWindow(titleCameras, open) {
		RenderCameras(v, cameras)
	}
	v.EndWindow()
}

// RenderCameras draws one expandable entry per camera.
func RenderCameras(v gui.View, cameras []scene.Camera) {
	if len(cameras) == 0 {
		v.TextDisabled("No cameras")
		return
	}

	for i := range cameras {
		c := &cameras[i]
		if !v.TreeNode(strconv.Itoa(i), fmt.Sprintf("Camera %d: %s", i, c.Name)) {
			continue
		}

		v.DragFloat("Sensitivity", &c.Sensitivity, 0.01)
		v.DragFloat3("Position", (*[3]float32)(&c.Position), 0.1)
		v.DragFloat("Pitch", &c.Pitch, 0.5)
		v.DragFloat("Roll", &c.Roll, 0.5)
		v.DragFloat("Yaw", &c.Yaw, 0.5)
		v.DragFloat("FOV", &c.FOV, 0.5)

		v.Separator()
		v.Text(formatVec("Front", c.Front))
		v.Text(formatVec("Up", c.Up))
		v.Text(formatVec("World Up", c.WorldUp))

		if v.TreeNode("view", "View") {
			renderMatrix(v, c.View)
			v.TreePop()
		}
		if v.TreeNode("projection", "Projection") {
			renderMatrix(v, c.Projection)
			v.TreePop()
		}
		v.TreePop()
	}
}

func formatVec(name string, vec mgl32.Vec3) string {
	return fmt.Sprintf("%s: %.3f %.3f %.3f", name, vec[0], vec[1], vec[2])
}
