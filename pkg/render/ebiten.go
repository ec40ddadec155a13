package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/linearfx/pkg/particles"
)

// near is the camera-space depth below which primitives are culled.
const near = 0.05

// Ebiten draws particle primitives onto an ebiten image through a
// Camera. Call Begin with the frame's target image before running the
// particle systems each tick.
type Ebiten struct {
	cam   *Camera
	dst   *ebiten.Image
	focal float32
}

// New returns a renderer projecting through cam. focal is the
// projection scale in pixels at depth 1; 500 works well for the
// default viewer window.
func New(cam *Camera, focal float32) *Ebiten {
	return &Ebiten{cam: cam, focal: focal}
}

// Begin sets the frame's draw target. Draw calls before the first
// Begin are dropped.
func (r *Ebiten) Begin(dst *ebiten.Image) {
	r.dst = dst
}

// Camera returns the camera the renderer projects through.
func (r *Ebiten) Camera() *Camera { return r.cam }

// DrawPoint implements particles.Renderer.
func (r *Ebiten) DrawPoint(p mgl32.Vec3, size float32, c particles.Color) {
	if r.dst == nil {
		return
	}
	sx, sy, depth, ok := r.toScreen(p)
	if !ok {
		return
	}
	radius := size * r.focal / depth
	if radius < 0.5 {
		radius = 0.5
	}
	vector.DrawFilledCircle(r.dst, sx, sy, radius, c.NRGBA(), true)
}

// DrawSegment implements particles.Renderer.
func (r *Ebiten) DrawSegment(a, b mgl32.Vec3, width float32, c particles.Color) {
	if r.dst == nil {
		return
	}
	ax, ay, ad, aok := r.toScreen(a)
	bx, by, bd, bok := r.toScreen(b)
	if !aok || !bok {
		return
	}
	depth := (ad + bd) / 2
	stroke := width * r.focal / depth
	if stroke < 1 {
		stroke = 1
	}
	vector.StrokeLine(r.dst, ax, ay, bx, by, stroke, c.NRGBA(), true)
}

func (r *Ebiten) toScreen(p mgl32.Vec3) (x, y, depth float32, ok bool) {
	cs := r.cam.project(p)
	if cs.Z() < near {
		return 0, 0, 0, false
	}
	bounds := r.dst.Bounds()
	cx := float32(bounds.Dx()) / 2
	cy := float32(bounds.Dy()) / 2
	x = cx + cs.X()/cs.Z()*r.focal
	y = cy - cs.Y()/cs.Z()*r.focal
	return x, y, cs.Z(), true
}
