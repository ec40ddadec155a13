package particles

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Particle is a single spawned primitive: a point, or a short line
// segment for streak emitters. Geometry is immutable after spawn; only
// the internal clock can be reset, which statically drawn non-expiring
// particles use to stay alive across frames.
type Particle struct {
	location mgl32.Vec3
	tail     mgl32.Vec3
	segment  bool
	color    Color
	size     float32
	decay    float32
	fades    bool

	spawned time.Time
	clock   Clock
}

// NewParticle creates a point particle. decay is the particle's
// lifetime in seconds; with fades set its alpha scales down linearly
// over that lifetime.
func NewParticle(location mgl32.Vec3, c Color, size, decay float32, fades bool) (*Particle, error) {
	if err := checkDecay(decay); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, &ValidationError{Field: "size", Value: size, Constraint: "must not be negative"}
	}
	p := &Particle{
		location: location,
		color:    c,
		size:     size,
		decay:    decay,
		fades:    fades,
		clock:    SystemClock(),
	}
	p.spawned = p.clock.Now()
	return p, nil
}

// NewSegmentParticle creates a line-segment particle from head to tail.
func NewSegmentParticle(head, tail mgl32.Vec3, c Color, width, decay float32, fades bool) (*Particle, error) {
	p, err := NewParticle(head, c, width, decay, fades)
	if err != nil {
		return nil, err
	}
	p.tail = tail
	p.segment = true
	return p, nil
}

// newParticleOn is the emitter-side constructor: parameters are already
// validated and the particle shares the emitter's clock.
func newParticleOn(clock Clock, location mgl32.Vec3, c Color, size, decay float32, fades bool) *Particle {
	return &Particle{
		location: location,
		color:    c,
		size:     size,
		decay:    decay,
		fades:    fades,
		clock:    clock,
		spawned:  clock.Now(),
	}
}

// Draw renders the particle through r and reports whether it has
// outlived its decay and should be retired.
func (p *Particle) Draw(r Renderer) bool {
	elapsed := float32(p.clock.Now().Sub(p.spawned).Seconds())
	c := p.color
	if p.fades {
		c = c.Faded(elapsed, p.decay)
	}
	if p.segment {
		r.DrawSegment(p.location, p.tail, p.size, c)
	} else {
		r.DrawPoint(p.location, p.size, c)
	}
	return elapsed > p.decay
}

// Reset rewinds the particle's spawn time to now, restarting its decay
// window.
func (p *Particle) Reset() {
	p.spawned = p.clock.Now()
}

// Translate returns the particle shifted by d. Useful when placing
// clones of a statically drawn particle.
func (p *Particle) Translate(d mgl32.Vec3) *Particle {
	q := *p
	q.location = q.location.Add(d)
	if q.segment {
		q.tail = q.tail.Add(d)
	}
	return &q
}

// Location returns the particle's position (the head for segments).
func (p *Particle) Location() mgl32.Vec3 { return p.location }

// Color returns the particle's spawn color, before any fading.
func (p *Particle) Color() Color { return p.color }
