package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-look camera. The scalar fields are the editable state;
// Front, Up, Right, View and Projection are derived by Update.
type Camera struct {
	Name        string
	Sensitivity float32
	Position    mgl32.Vec3
	Pitch       float32 // degrees
	Roll        float32 // degrees
	Yaw         float32 // degrees
	FOV         float32 // vertical, degrees
	Near, Far   float32
	Aspect      float32

	Front   mgl32.Vec3
	Up      mgl32.Vec3
	Right   mgl32.Vec3
	WorldUp mgl32.Vec3

	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// NewCamera returns a camera at pos looking down -Z.
func NewCamera(name string, pos mgl32.Vec3, aspect float32) *Camera {
	c := &Camera{
		Name:        name,
		Sensitivity: 0.1,
		Position:    pos,
		Yaw:         -90,
		FOV:         45,
		Near:        0.1,
		Far:         1000,
		Aspect:      aspect,
		WorldUp:     mgl32.Vec3{0, 1, 0},
	}
	c.Update()
	return c
}

// Update recomputes the basis vectors and matrices from the scalar fields.
// Values are used as-is; nothing is clamped.
func (c *Camera) Update() {
	worldUp := c.WorldUp
	if worldUp.Len() == 0 {
		worldUp = mgl32.Vec3{0, 1, 0}
		c.WorldUp = worldUp
	}

	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	front := mgl32.Vec3{
		cos(yaw) * cos(pitch),
		sin(pitch),
		sin(yaw) * cos(pitch),
	}
	c.Front = front.Normalize()

	right := c.Front.Cross(worldUp)
	if right.Len() == 0 {
		// Looking straight along world up.
		right = mgl32.Vec3{1, 0, 0}
	}
	c.Right = right.Normalize()
	up := c.Right.Cross(c.Front).Normalize()

	if c.Roll != 0 {
		rot := mgl32.HomogRotate3D(mgl32.DegToRad(c.Roll), c.Front)
		up = rot.Mul4x1(up.Vec4(0)).Vec3().Normalize()
		c.Right = c.Front.Cross(up).Normalize()
	}
	c.Up = up

	c.View = mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)

	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Look applies a mouse delta scaled by Sensitivity and keeps pitch within
// +-89 degrees so the view never flips.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
	c.Update()
}

func cos(rad float32) float32 { return float32(math.Cos(float64(rad))) }
func sin(rad float32) float32 { return float32(math.Sin(float64(rad))) }
