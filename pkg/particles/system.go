package particles

// System is the capability contract shared by leaf emitters and the
// two group kinds. Anything implementing it can be nested inside a
// SyncGroup or SeqGroup and driven once per rendered frame.
type System interface {
	// IsActive reports whether the system is between Setup and TearDown.
	IsActive() bool

	// IsLooping reports whether the system is active and set to loop.
	IsLooping() bool

	// IsInitialized reports whether Setup has validated and prepared
	// the system.
	IsInitialized() bool

	// ResetTime rewinds the system's own elapsed-time counter to zero.
	ResetTime()

	// ElapsedTime returns seconds since Setup (or the last ResetTime)
	// on the system's own clock. ok is false for implementations that
	// keep no time of their own.
	ElapsedTime() (elapsed float32, ok bool)

	// Setup validates parameters and prepares the system so that
	// IsActive and IsInitialized report true. A period of 0 keeps the
	// configured period; any other value overrides it after validation.
	// Groups propagate the resolved period to their children.
	Setup(shouldLoop bool, period float32) error

	// TearDown deactivates the system. It is idempotent and
	// unconditional; spawned particles are left to finish on their own
	// and are cleared by the next Setup.
	TearDown()

	// NextFrame advances and draws one frame at the given elapsed time,
	// or at the system's own elapsed time when at is nil. It reports
	// whether the system is still within its period. Looping is not
	// handled here; that is Run's job.
	NextFrame(at *float32) (bool, error)

	// Children returns the contained subsystems, nil for leaf emitters.
	Children() []System
}

// At wraps an explicit elapsed time for NextFrame.
func At(t float32) *float32 { return &t }

// Run advances s by one frame using its own clock, then applies the
// lifecycle policy: on period exhaustion a looping system has its clock
// reset while a non-looping one is torn down. The returned bool is
// NextFrame's verdict either way, which keeps "did this tick keep
// going" separate from the lifecycle action that follows.
//
// Run fails with ErrNotReady if s has not been set up.
func Run(s System) (bool, error) {
	if !(s.IsActive() && s.IsInitialized()) {
		return false, ErrNotReady
	}
	var at *float32
	if t, ok := s.ElapsedTime(); ok {
		at = &t
	}
	alive, err := s.NextFrame(at)
	if err != nil {
		return false, err
	}
	if !alive {
		if s.IsLooping() {
			s.ResetTime()
		} else {
			s.TearDown()
		}
	}
	return alive, nil
}

// Start sets up s for a single non-looping cycle.
func Start(s System) error { return s.Setup(false, 0) }

// StartLoop sets up s to loop until stopped.
func StartLoop(s System) error { return s.Setup(true, 0) }

// Stop tears s down.
func Stop(s System) { s.TearDown() }
