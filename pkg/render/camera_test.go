package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestCamera_ProjectStraightAhead(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 0}, 0, 0) // looking down +X

	got := cam.project(mgl32.Vec3{5, 0, 0})
	if !approx(got.X(), 0) || !approx(got.Y(), 0) || !approx(got.Z(), 5) {
		t.Errorf("point ahead projects to %v, want {0 0 5}", got)
	}

	got = cam.project(mgl32.Vec3{5, 2, 0})
	if !approx(got.Y(), 2) {
		t.Errorf("point above center has camera-space y %v, want 2", got.Y())
	}

	// Behind the camera: negative depth.
	got = cam.project(mgl32.Vec3{-1, 0, 0})
	if got.Z() >= 0 {
		t.Errorf("point behind camera has depth %v, want negative", got.Z())
	}
}

func TestCamera_BasisIsOrthonormal(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{1, 2, 3}, 0.7, 0.3)
	right, up, front := cam.basis()
	for name, v := range map[string]mgl32.Vec3{"right": right, "up": up, "front": front} {
		if !approx(v.Len(), 1) {
			t.Errorf("%s is not unit length: %v", name, v.Len())
		}
	}
	if !approx(right.Dot(up), 0) || !approx(right.Dot(front), 0) || !approx(up.Dot(front), 0) {
		t.Error("camera basis vectors are not orthogonal")
	}
}

func TestCamera_OrbitClampsPitch(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, 0, 0)
	cam.Orbit(0, 10)
	if cam.Pitch > 1.56 {
		t.Errorf("pitch not clamped: %v", cam.Pitch)
	}
	cam.Orbit(0, -20)
	if cam.Pitch < -1.56 {
		t.Errorf("pitch not clamped below: %v", cam.Pitch)
	}
}
