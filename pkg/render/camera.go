// Package render implements the particles.Renderer contract on top of
// ebiten: world-space points and segments are projected through a
// simple perspective camera and drawn with the vector package.
package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a yaw/pitch perspective camera. Yaw and pitch are radians;
// yaw 0 looks down +X, pitch 0 is level.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// NewCamera returns a camera at position looking along the given yaw
// and pitch.
func NewCamera(position mgl32.Vec3, yaw, pitch float32) *Camera {
	return &Camera{Position: position, Yaw: yaw, Pitch: pitch}
}

// Orbit adjusts yaw and pitch by the given deltas, clamping pitch just
// short of straight up/down to keep the basis well-defined.
func (c *Camera) Orbit(dyaw, dpitch float32) {
	const limit = 1.55
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > limit {
		c.Pitch = limit
	}
	if c.Pitch < -limit {
		c.Pitch = -limit
	}
}

// basis returns the camera's right, up and front unit vectors.
func (c *Camera) basis() (right, up, front mgl32.Vec3) {
	front = mgl32.Vec3{
		math32.Cos(c.Yaw) * math32.Cos(c.Pitch),
		math32.Sin(c.Pitch),
		math32.Sin(c.Yaw) * math32.Cos(c.Pitch),
	}.Normalize()
	worldUp := mgl32.Vec3{0, 1, 0}
	right = front.Cross(worldUp).Normalize()
	up = right.Cross(front).Normalize()
	return right, up, front
}

// project maps a world point into camera space: x right, y up, z depth
// in front of the camera.
func (c *Camera) project(p mgl32.Vec3) mgl32.Vec3 {
	right, up, front := c.basis()
	rel := p.Sub(c.Position)
	return mgl32.Vec3{rel.Dot(right), rel.Dot(up), rel.Dot(front)}
}
