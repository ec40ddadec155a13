package particles

import "github.com/go-gl/mathgl/mgl32"

// Renderer is the drawing collaborator. Calls are fire-and-forget; the
// core never consumes a return value from the renderer.
type Renderer interface {
	// DrawPoint draws a point primitive at p with the given size.
	DrawPoint(p mgl32.Vec3, size float32, c Color)
	// DrawSegment draws a line primitive from a to b.
	DrawSegment(a, b mgl32.Vec3, width float32, c Color)
}

// DeltaSource reports the host's time since the last rendered frame,
// in seconds. Only the streak emitter variant uses it, to evaluate the
// lookahead end of each spawned segment.
type DeltaSource func() float32
