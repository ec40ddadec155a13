package particles

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRun_NotReady(t *testing.T) {
	lp := NewLinearParticles(&recordRenderer{}, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}).
		WithClock(newManualClock())

	alive, err := Run(lp)
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("Run before Setup: err = %v, want ErrNotReady", err)
	}
	if alive {
		t.Error("not-ready Run must report false")
	}
	if lp.IsActive() || lp.IsInitialized() || len(lp.Particles()) != 0 {
		t.Error("not-ready Run must not mutate the emitter")
	}
}

func TestRun_AfterTearDownIsNotReady(t *testing.T) {
	lp, _ := testEmitter(&recordRenderer{})
	if err := Start(lp); err != nil {
		t.Fatal(err)
	}
	Stop(lp)
	if _, err := Run(lp); !errors.Is(err, ErrNotReady) {
		t.Errorf("Run after Stop: err = %v, want ErrNotReady", err)
	}
}

func TestRun_TearsDownExhaustedSystem(t *testing.T) {
	lp, clock := testEmitter(&recordRenderer{})
	if err := Start(lp); err != nil {
		t.Fatal(err)
	}

	clock.advance(0.5)
	alive, err := Run(lp)
	if err != nil || !alive {
		t.Fatalf("mid-period Run: alive=%v err=%v", alive, err)
	}

	clock.advance(1)
	alive, err = Run(lp)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if alive {
		t.Error("Run past the period must report false")
	}
	if lp.IsActive() || lp.IsInitialized() {
		t.Error("exhausted non-looping system must be torn down")
	}
}

func TestRun_LoopingResetsClock(t *testing.T) {
	lp, clock := testEmitter(&recordRenderer{})
	if err := StartLoop(lp); err != nil {
		t.Fatal(err)
	}

	clock.advance(1.5) // past the 1s period
	alive, err := Run(lp)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if alive {
		t.Error("exhaustion verdict is returned even when looping")
	}
	if !lp.IsActive() || !lp.IsInitialized() {
		t.Error("looping system must stay active across the wrap")
	}
	if elapsed, _ := lp.ElapsedTime(); elapsed != 0 {
		t.Errorf("loop wrap must reset the clock, elapsed = %v", elapsed)
	}
}

func TestRun_PropagatesNextFrameError(t *testing.T) {
	s := &stubSystem{nextErr: errors.New("collaborator failure")}
	if err := s.Setup(false, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(s); err == nil {
		t.Error("Run must propagate NextFrame errors")
	}
	if s.tearDownCalls != 0 {
		t.Error("a failed tick must not trigger lifecycle actions")
	}
}

func TestStartHelpers(t *testing.T) {
	lp, _ := testEmitter(&recordRenderer{})
	if err := Start(lp); err != nil {
		t.Fatal(err)
	}
	if lp.IsLooping() {
		t.Error("Start must not set looping")
	}
	if err := StartLoop(lp); err != nil {
		t.Fatal(err)
	}
	if !lp.IsLooping() {
		t.Error("StartLoop must set looping")
	}
}
