package particles

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Test doubles: a manually advanced clock, fixed-outcome samplers, a
// recording renderer and a scriptable child system for group tests.

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Unix(0, 0)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(seconds float32) {
	c.now = c.now.Add(time.Duration(float64(seconds) * float64(time.Second)))
}

// fixedSampler always reports the same value, forcing spawn trials to
// always pass (0) or always fail (>1 against densities in [0,1]).
type fixedSampler struct {
	value float32
}

func (s fixedSampler) Uniform(low, high float32) float32 { return s.value }

type drawnPoint struct {
	pos   mgl32.Vec3
	size  float32
	color Color
}

type drawnSegment struct {
	a, b  mgl32.Vec3
	width float32
	color Color
}

// recordRenderer captures draw calls for inspection.
type recordRenderer struct {
	points   []drawnPoint
	segments []drawnSegment
}

func (r *recordRenderer) DrawPoint(p mgl32.Vec3, size float32, c Color) {
	r.points = append(r.points, drawnPoint{pos: p, size: size, color: c})
}

func (r *recordRenderer) DrawSegment(a, b mgl32.Vec3, width float32, c Color) {
	r.segments = append(r.segments, drawnSegment{a: a, b: b, width: width, color: c})
}

func (r *recordRenderer) reset() {
	r.points = r.points[:0]
	r.segments = r.segments[:0]
}

// stubSystem records the lifecycle calls and frame times it receives.
// aliveFor controls how long NextFrame keeps reporting true.
type stubSystem struct {
	aliveFor float32

	setupCalls    int
	setupPeriods  []float32
	setupLoops    []bool
	tearDownCalls int
	frameTimes    []float32
	nextErr       error

	active      bool
	looping     bool
	initialized bool
}

func (s *stubSystem) IsActive() bool      { return s.active }
func (s *stubSystem) IsLooping() bool     { return s.active && s.looping }
func (s *stubSystem) IsInitialized() bool { return s.initialized }
func (s *stubSystem) ResetTime()          {}

func (s *stubSystem) ElapsedTime() (float32, bool) { return 0, false }

func (s *stubSystem) Setup(shouldLoop bool, period float32) error {
	s.setupCalls++
	s.setupPeriods = append(s.setupPeriods, period)
	s.setupLoops = append(s.setupLoops, shouldLoop)
	s.looping = shouldLoop
	s.active = true
	s.initialized = true
	return nil
}

func (s *stubSystem) TearDown() {
	s.tearDownCalls++
	s.active = false
	s.initialized = false
}

func (s *stubSystem) NextFrame(at *float32) (bool, error) {
	if s.nextErr != nil {
		return false, s.nextErr
	}
	var t float32
	if at != nil {
		t = *at
	}
	s.frameTimes = append(s.frameTimes, t)
	return t <= s.aliveFor, nil
}

func (s *stubSystem) Children() []System { return nil }
