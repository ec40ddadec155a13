package particles

import "time"

// SyncGroup replays its children all together under one shared clock.
// Setup propagates the resolved period to every child, and each tick
// advances every child with the identical current-time snapshot, so
// children stay deterministically synchronized even when their own
// internal state differs.
type SyncGroup struct {
	period  float32
	systems []System

	clock       Clock
	startTime   time.Time
	active      bool
	looping     bool
	initialized bool
}

// NewSyncGroup returns a synchronized group over the given systems.
func NewSyncGroup(period float32, systems ...System) *SyncGroup {
	return &SyncGroup{
		period:  period,
		systems: systems,
		clock:   SystemClock(),
	}
}

// WithSystems replaces the group's children.
func (g *SyncGroup) WithSystems(systems ...System) *SyncGroup {
	g.systems = systems
	return g
}

// WithPeriod overrides the group's period.
func (g *SyncGroup) WithPeriod(period float32) (*SyncGroup, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	g.period = period
	return g, nil
}

// WithClock injects a time source, replacing the wall clock.
func (g *SyncGroup) WithClock(c Clock) *SyncGroup {
	if c != nil {
		g.clock = c
	}
	return g
}

// Period returns the group's configured period in seconds.
func (g *SyncGroup) Period() float32 { return g.period }

// IsActive implements System.
func (g *SyncGroup) IsActive() bool { return g.active }

// IsLooping implements System.
func (g *SyncGroup) IsLooping() bool { return g.active && g.looping }

// IsInitialized implements System.
func (g *SyncGroup) IsInitialized() bool { return g.initialized }

// ResetTime implements System.
func (g *SyncGroup) ResetTime() { g.startTime = g.clock.Now() }

// ElapsedTime implements System.
func (g *SyncGroup) ElapsedTime() (float32, bool) {
	return float32(g.clock.Now().Sub(g.startTime).Seconds()), true
}

// Children implements System.
func (g *SyncGroup) Children() []System { return g.systems }

// Setup resolves the period and sets up every child with it. Children
// already set up when a later one fails are left set up: semantics are
// best-effort with the first error reported, no rollback.
func (g *SyncGroup) Setup(shouldLoop bool, period float32) error {
	resolved := g.period
	if period != 0 {
		resolved = period
	}
	if err := checkPeriod(resolved); err != nil {
		return err
	}
	g.period = resolved
	for _, s := range g.systems {
		if err := s.Setup(shouldLoop, g.period); err != nil {
			return err
		}
	}
	g.looping = shouldLoop
	g.active = true
	g.initialized = true
	g.ResetTime()
	return nil
}

// TearDown tears down every child unconditionally, then the group.
func (g *SyncGroup) TearDown() {
	for _, s := range g.systems {
		s.TearDown()
	}
	g.active = false
	g.initialized = false
}

// NextFrame resolves the current time once and advances every child
// with that same snapshot, in declaration order. The first child error
// aborts the tick; remaining children are not advanced that frame.
func (g *SyncGroup) NextFrame(at *float32) (bool, error) {
	var now float32
	if at != nil {
		now = *at
	} else {
		now, _ = g.ElapsedTime()
	}
	for _, s := range g.systems {
		if _, err := s.NextFrame(&now); err != nil {
			return false, err
		}
	}
	return now <= g.period, nil
}

// SeqGroup replays its children strictly one at a time, in declaration
// order, each allotted period/len(children) seconds. Children see time
// relative to their own activation: the group subtracts the accumulated
// offset of the parts already finished.
type SeqGroup struct {
	period  float32
	systems []System

	partPeriod float32
	current    int
	timeOffset float32

	clock       Clock
	startTime   time.Time
	active      bool
	looping     bool
	initialized bool
}

// NewSeqGroup returns a sequential group over the given systems. At
// least one system is required, since each child's sub-period divides
// the group period by the child count.
func NewSeqGroup(period float32, systems ...System) (*SeqGroup, error) {
	if len(systems) == 0 {
		return nil, &ValidationError{Field: "systems", Value: 0, Constraint: "sequential group needs at least one system"}
	}
	return &SeqGroup{
		period:     period,
		systems:    systems,
		partPeriod: period / float32(len(systems)),
		clock:      SystemClock(),
	}, nil
}

// WithSystems replaces the group's children and recomputes the
// per-child sub-period.
func (g *SeqGroup) WithSystems(systems ...System) (*SeqGroup, error) {
	if len(systems) == 0 {
		return nil, &ValidationError{Field: "systems", Value: 0, Constraint: "sequential group needs at least one system"}
	}
	g.systems = systems
	g.partPeriod = g.period / float32(len(systems))
	return g, nil
}

// WithPeriod overrides the group's period and recomputes the per-child
// sub-period.
func (g *SeqGroup) WithPeriod(period float32) (*SeqGroup, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	g.period = period
	g.partPeriod = period / float32(len(g.systems))
	return g, nil
}

// WithClock injects a time source, replacing the wall clock.
func (g *SeqGroup) WithClock(c Clock) *SeqGroup {
	if c != nil {
		g.clock = c
	}
	return g
}

// Period returns the group's configured period in seconds.
func (g *SeqGroup) Period() float32 { return g.period }

// PartPeriod returns the sub-period allotted to each child.
func (g *SeqGroup) PartPeriod() float32 { return g.partPeriod }

// IsActive implements System.
func (g *SeqGroup) IsActive() bool { return g.active }

// IsLooping implements System.
func (g *SeqGroup) IsLooping() bool { return g.active && g.looping }

// IsInitialized implements System.
func (g *SeqGroup) IsInitialized() bool { return g.initialized }

// ResetTime implements System.
func (g *SeqGroup) ResetTime() { g.startTime = g.clock.Now() }

// ElapsedTime implements System.
func (g *SeqGroup) ElapsedTime() (float32, bool) {
	return float32(g.clock.Now().Sub(g.startTime).Seconds()), true
}

// Children implements System.
func (g *SeqGroup) Children() []System { return g.systems }

// Setup resolves the period, recomputes the sub-period, and sets up
// only the first child; the rest are set up as the sequence reaches
// them.
func (g *SeqGroup) Setup(shouldLoop bool, period float32) error {
	resolved := g.period
	if period != 0 {
		resolved = period
	}
	if err := checkPeriod(resolved); err != nil {
		return err
	}
	if len(g.systems) == 0 {
		return &IndexError{Op: "seq group setup", Index: 0, Len: 0}
	}
	g.period = resolved
	g.partPeriod = resolved / float32(len(g.systems))

	if err := g.systems[0].Setup(shouldLoop, g.partPeriod); err != nil {
		return err
	}
	g.current = 0
	g.timeOffset = 0
	g.looping = shouldLoop
	g.active = true
	g.initialized = true
	g.ResetTime()
	return nil
}

// TearDown tears down every child unconditionally and resets the
// sequence bookkeeping.
func (g *SeqGroup) TearDown() {
	for _, s := range g.systems {
		s.TearDown()
	}
	g.current = 0
	g.timeOffset = 0
	g.active = false
	g.initialized = false
}

// NextFrame advances the current child with the group time shifted by
// the accumulated offset. When the child exhausts its sub-period it is
// torn down and the sequence rotates: the next child is set up, or the
// whole sequence wraps (looping) or finishes (non-looping).
func (g *SeqGroup) NextFrame(at *float32) (bool, error) {
	var now float32
	if at != nil {
		now = *at
	} else {
		now, _ = g.ElapsedTime()
	}
	adjusted := now - g.timeOffset

	if g.current >= len(g.systems) {
		return false, &IndexError{Op: "seq group next frame", Index: g.current, Len: len(g.systems)}
	}
	alive, err := g.systems[g.current].NextFrame(&adjusted)
	if err != nil {
		return false, err
	}
	if alive {
		return true, nil
	}

	g.systems[g.current].TearDown()
	g.current++
	g.timeOffset += g.partPeriod
	if g.current == len(g.systems) {
		if !g.looping {
			return false, nil
		}
		g.current = 0
		g.timeOffset = 0
		g.ResetTime()
	}
	if err := g.systems[g.current].Setup(g.looping, g.partPeriod); err != nil {
		return false, err
	}
	return true, nil
}
