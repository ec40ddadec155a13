package particles

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// LinearParticles is the leaf emitter: it spawns particles along the
// segment from start to end. Each frame it samples the density
// keyframes at the current elapsed time, runs one Bernoulli trial
// against the sampled chance, and on success spawns a particle whose
// location, color and size are interpolated at that same time.
//
// A fresh emitter is inactive and must be set up (directly or through
// Start/StartLoop) before it can be run.
type LinearParticles struct {
	start mgl32.Vec3
	end   mgl32.Vec3

	densities []float32
	locations []float32
	colors    []Color
	sizes     []float32

	period float32
	decay  float32
	easing Easing
	fades  bool

	// streak mode spawns a short segment toward the location one
	// frame-delta ahead instead of a point.
	streak bool
	delta  DeltaSource

	renderer Renderer
	rng      Sampler
	clock    Clock

	particles   []*Particle
	startTime   time.Time
	active      bool
	looping     bool
	initialized bool
}

// NewLinearParticles returns an emitter spawning along start→end with
// default parameters: a constant density of 1, a full start-to-end
// location sweep, white fading particles of size 0.01, period and
// decay of one second.
func NewLinearParticles(r Renderer, start, end mgl32.Vec3) *LinearParticles {
	return &LinearParticles{
		start:     start,
		end:       end,
		densities: []float32{1},
		locations: []float32{0, 1},
		colors:    []Color{White},
		sizes:     []float32{0.01},
		period:    1,
		decay:     1,
		easing:    EaseLinear,
		fades:     true,
		renderer:  r,
		rng:       DefaultSampler(),
		clock:     SystemClock(),
	}
}

// WithPeriod overrides the emitter's period.
func (lp *LinearParticles) WithPeriod(period float32) (*LinearParticles, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	lp.period = period
	return lp, nil
}

// WithDecay overrides the lifetime of each spawned particle.
func (lp *LinearParticles) WithDecay(decay float32) (*LinearParticles, error) {
	if err := checkDecay(decay); err != nil {
		return nil, err
	}
	lp.decay = decay
	return lp, nil
}

// WithDensities overrides the spawn-chance keyframes, each in [0, 1].
func (lp *LinearParticles) WithDensities(densities []float32) (*LinearParticles, error) {
	if err := checkDensities(densities); err != nil {
		return nil, err
	}
	lp.densities = append([]float32(nil), densities...)
	return lp, nil
}

// WithLocations overrides the location-ratio keyframes, each in [0, 1]:
// 0 spawns at start, 1 at end.
func (lp *LinearParticles) WithLocations(locations []float32) (*LinearParticles, error) {
	if err := checkLocations(locations); err != nil {
		return nil, err
	}
	lp.locations = append([]float32(nil), locations...)
	return lp, nil
}

// WithColors overrides the color keyframes.
func (lp *LinearParticles) WithColors(colors []Color) (*LinearParticles, error) {
	if err := checkColors(colors); err != nil {
		return nil, err
	}
	lp.colors = append([]Color(nil), colors...)
	return lp, nil
}

// WithSizes overrides the particle-size keyframes.
func (lp *LinearParticles) WithSizes(sizes []float32) (*LinearParticles, error) {
	if err := checkSizes(sizes); err != nil {
		return nil, err
	}
	lp.sizes = append([]float32(nil), sizes...)
	return lp, nil
}

// WithStartEnd replaces the emitter's segment endpoints.
func (lp *LinearParticles) WithStartEnd(start, end mgl32.Vec3) *LinearParticles {
	lp.start, lp.end = start, end
	return lp
}

// WithEasing sets the curve applied to the sampling ratio. nil restores
// linear sampling.
func (lp *LinearParticles) WithEasing(e Easing) *LinearParticles {
	if e == nil {
		e = EaseLinear
	}
	lp.easing = e
	return lp
}

// WithFade controls whether spawned particles fade out over their decay.
func (lp *LinearParticles) WithFade(fades bool) *LinearParticles {
	lp.fades = fades
	return lp
}

// WithStreak switches the emitter to segment particles. delta supplies
// the host's time since the last rendered frame, used to evaluate the
// lookahead end of each segment.
func (lp *LinearParticles) WithStreak(delta DeltaSource) *LinearParticles {
	lp.streak = delta != nil
	lp.delta = delta
	return lp
}

// WithClock injects a time source, replacing the wall clock.
func (lp *LinearParticles) WithClock(c Clock) *LinearParticles {
	if c != nil {
		lp.clock = c
	}
	return lp
}

// WithSampler injects the random collaborator used for spawn trials.
func (lp *LinearParticles) WithSampler(s Sampler) *LinearParticles {
	if s != nil {
		lp.rng = s
	}
	return lp
}

// Clone returns a deep copy of the emitter's configuration. Live
// particles and lifecycle state are not carried over; the clone starts
// inactive. This is the template pattern: configure one emitter, then
// stamp out variants with the CloneWith* helpers.
func (lp *LinearParticles) Clone() *LinearParticles {
	c := *lp
	c.densities = append([]float32(nil), lp.densities...)
	c.locations = append([]float32(nil), lp.locations...)
	c.colors = append([]Color(nil), lp.colors...)
	c.sizes = append([]float32(nil), lp.sizes...)
	c.particles = nil
	c.active = false
	c.looping = false
	c.initialized = false
	return &c
}

// CloneWithStartEnd clones the emitter onto a different segment.
func (lp *LinearParticles) CloneWithStartEnd(start, end mgl32.Vec3) *LinearParticles {
	return lp.Clone().WithStartEnd(start, end)
}

// CloneWithColors clones the emitter with different color keyframes.
func (lp *LinearParticles) CloneWithColors(colors []Color) (*LinearParticles, error) {
	return lp.Clone().WithColors(colors)
}

// Reversed returns a clone that plays the emitter backwards: keyframe
// arrays reversed and endpoints swapped. Reversing twice restores the
// original configuration.
func (lp *LinearParticles) Reversed() *LinearParticles {
	c := lp.Clone()
	reverse(c.densities)
	reverse(c.locations)
	reverse(c.sizes)
	for i, j := 0, len(c.colors)-1; i < j; i, j = i+1, j-1 {
		c.colors[i], c.colors[j] = c.colors[j], c.colors[i]
	}
	c.start, c.end = c.end, c.start
	return c
}

func reverse(vs []float32) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

// Period returns the emitter's configured period in seconds.
func (lp *LinearParticles) Period() float32 { return lp.period }

// Decay returns the lifetime of spawned particles in seconds.
func (lp *LinearParticles) Decay() float32 { return lp.decay }

// Particles returns the live particles owned by the emitter.
func (lp *LinearParticles) Particles() []*Particle { return lp.particles }

// IsActive implements System.
func (lp *LinearParticles) IsActive() bool { return lp.active }

// IsLooping implements System.
func (lp *LinearParticles) IsLooping() bool { return lp.active && lp.looping }

// IsInitialized implements System.
func (lp *LinearParticles) IsInitialized() bool { return lp.initialized }

// ResetTime implements System.
func (lp *LinearParticles) ResetTime() { lp.startTime = lp.clock.Now() }

// ElapsedTime implements System.
func (lp *LinearParticles) ElapsedTime() (float32, bool) {
	return float32(lp.clock.Now().Sub(lp.startTime).Seconds()), true
}

// Children implements System; leaf emitters have none.
func (lp *LinearParticles) Children() []System { return nil }

// Setup validates every parameter (densities, locations, colors,
// sizes, period, decay — failing on the first violation), clears any
// leftover particles, and activates the emitter. period 0 keeps the
// configured period.
func (lp *LinearParticles) Setup(shouldLoop bool, period float32) error {
	if err := checkDensities(lp.densities); err != nil {
		return err
	}
	if err := checkLocations(lp.locations); err != nil {
		return err
	}
	if err := checkColors(lp.colors); err != nil {
		return err
	}
	if err := checkSizes(lp.sizes); err != nil {
		return err
	}
	resolved := lp.period
	if period != 0 {
		resolved = period
	}
	if err := checkPeriod(resolved); err != nil {
		return err
	}
	if err := checkDecay(lp.decay); err != nil {
		return err
	}
	lp.period = resolved
	lp.particles = lp.particles[:0]
	lp.looping = shouldLoop
	lp.active = true
	lp.initialized = true
	lp.ResetTime()
	return nil
}

// TearDown implements System. In-flight particles are not cleared;
// they finish fading on their own and the next Setup removes them.
func (lp *LinearParticles) TearDown() {
	lp.active = false
	lp.initialized = false
}

// NextFrame implements System: one spawn trial, then draw-and-retire
// of the live particles.
func (lp *LinearParticles) NextFrame(at *float32) (bool, error) {
	var now float32
	if at != nil {
		now = *at
	} else {
		now, _ = lp.ElapsedTime()
	}
	t := lp.sampleTime(now)

	density, err := FloatAt(lp.densities, t, lp.period)
	if err != nil {
		return false, err
	}
	if lp.rng.Uniform(0, 1) <= density {
		if err := lp.spawn(t); err != nil {
			return false, err
		}
	}

	live := lp.particles[:0]
	for _, p := range lp.particles {
		if !p.Draw(lp.renderer) {
			live = append(live, p)
		}
	}
	lp.particles = live

	return now <= lp.period, nil
}

// sampleTime applies the easing curve to the elapsed time, keeping the
// result in the same [0, period] domain the keyframes span.
func (lp *LinearParticles) sampleTime(now float32) float32 {
	if lp.easing == nil {
		return now
	}
	ratio := now / lp.period
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return lp.easing(ratio) * lp.period
}

func (lp *LinearParticles) spawn(t float32) error {
	loc, err := LocationAt(lp.locations, lp.start, lp.end, t, lp.period)
	if err != nil {
		return err
	}
	col, err := ColorAt(lp.colors, t, lp.period)
	if err != nil {
		return err
	}
	size, err := FloatAt(lp.sizes, t, lp.period)
	if err != nil {
		return err
	}

	p := newParticleOn(lp.clock, loc, col, size, lp.decay, lp.fades)
	if lp.streak {
		tail, err := LocationAt(lp.locations, lp.start, lp.end, t+lp.delta(), lp.period)
		if err != nil {
			return err
		}
		p.tail = tail
		p.segment = true
	}
	lp.particles = append(lp.particles, p)
	return nil
}
