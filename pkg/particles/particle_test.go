package particles

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParticle_DrawAndExpire(t *testing.T) {
	clock := newManualClock()
	r := &recordRenderer{}
	p := newParticleOn(clock, mgl32.Vec3{1, 2, 3}, Red, 0.05, 2, false)

	if expired := p.Draw(r); expired {
		t.Error("fresh particle should not be expired")
	}
	clock.advance(1.5)
	if expired := p.Draw(r); expired {
		t.Error("particle within decay should not be expired")
	}
	clock.advance(1)
	if expired := p.Draw(r); !expired {
		t.Error("particle past decay should be expired")
	}

	if len(r.points) != 3 {
		t.Fatalf("expected 3 draw calls, got %d", len(r.points))
	}
	for _, d := range r.points {
		if d.pos != (mgl32.Vec3{1, 2, 3}) || d.size != 0.05 || d.color != Red {
			t.Errorf("draw call %+v does not match spawn parameters", d)
		}
	}
}

func TestParticle_FadeScalesAlpha(t *testing.T) {
	clock := newManualClock()
	r := &recordRenderer{}
	p := newParticleOn(clock, mgl32.Vec3{}, Color{1, 1, 1, 1}, 0.01, 2, true)

	clock.advance(1)
	p.Draw(r)
	if got := r.points[0].color.A; got != 0.5 {
		t.Errorf("alpha at half decay = %v, want 0.5", got)
	}
	if r.points[0].color.R != 1 {
		t.Error("fade must only touch the alpha channel")
	}
}

func TestParticle_ResetRestartsDecay(t *testing.T) {
	clock := newManualClock()
	r := &recordRenderer{}
	p := newParticleOn(clock, mgl32.Vec3{}, White, 0.01, 1, false)

	clock.advance(5)
	p.Reset()
	if expired := p.Draw(r); expired {
		t.Error("reset particle should be back inside its decay window")
	}
}

func TestParticle_SegmentDraw(t *testing.T) {
	clock := newManualClock()
	r := &recordRenderer{}
	p := newParticleOn(clock, mgl32.Vec3{0, 0, 0}, Blue, 0.02, 1, false)
	p.tail = mgl32.Vec3{1, 0, 0}
	p.segment = true

	p.Draw(r)
	if len(r.segments) != 1 || len(r.points) != 0 {
		t.Fatalf("segment particle drew %d segments, %d points", len(r.segments), len(r.points))
	}
	seg := r.segments[0]
	if seg.a != (mgl32.Vec3{0, 0, 0}) || seg.b != (mgl32.Vec3{1, 0, 0}) || seg.width != 0.02 {
		t.Errorf("unexpected segment %+v", seg)
	}
}

func TestNewParticle_Validation(t *testing.T) {
	if _, err := NewParticle(mgl32.Vec3{}, White, 0.01, -1, false); err == nil {
		t.Error("negative decay must fail")
	}
	if _, err := NewParticle(mgl32.Vec3{}, White, -0.01, 1, false); err == nil {
		t.Error("negative size must fail")
	}
	if _, err := NewSegmentParticle(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, White, 0.01, -1, false); err == nil {
		t.Error("negative decay must fail for segments")
	}
}

func TestParticle_Translate(t *testing.T) {
	clock := newManualClock()
	p := newParticleOn(clock, mgl32.Vec3{1, 1, 1}, White, 0.01, 1, false)
	q := p.Translate(mgl32.Vec3{0, 2, 0})
	if q.Location() != (mgl32.Vec3{1, 3, 1}) {
		t.Errorf("translated location = %v", q.Location())
	}
	if p.Location() != (mgl32.Vec3{1, 1, 1}) {
		t.Error("Translate must not mutate the receiver")
	}
}
