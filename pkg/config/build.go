package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gonewx/linearfx/pkg/particles"
)

// BuildDeps carries the external collaborators wired into every built
// emitter.
type BuildDeps struct {
	// Renderer receives the draw calls. Required.
	Renderer particles.Renderer
	// Delta supplies the frame delta for streak emitters. Required
	// only when a preset uses streak nodes.
	Delta particles.DeltaSource
	// Clock and Sampler override the defaults when non-nil; tests use
	// these for determinism.
	Clock   particles.Clock
	Sampler particles.Sampler
}

// Build constructs the particle system tree described by the node.
// Parameter constraints are enforced by the particles builders, so a
// bad preset fails with the same *particles.ValidationError as
// programmatic construction.
func (n *SystemConfig) Build(deps BuildDeps) (particles.System, error) {
	if deps.Renderer == nil {
		return nil, fmt.Errorf("config: build requires a renderer")
	}
	return buildNode(n, deps)
}

// Build constructs the effect's system tree.
func (e *EffectConfig) Build(deps BuildDeps) (particles.System, error) {
	if e.System == nil {
		return nil, fmt.Errorf("config: effect %q has no system", e.Name)
	}
	sys, err := e.System.Build(deps)
	if err != nil {
		return nil, fmt.Errorf("config: effect %q: %w", e.Name, err)
	}
	return sys, nil
}

func buildNode(n *SystemConfig, deps BuildDeps) (particles.System, error) {
	switch n.Type {
	case "linear":
		return buildLinear(n, deps)
	case "sync":
		children, err := buildChildren(n, deps)
		if err != nil {
			return nil, err
		}
		return particles.NewSyncGroup(periodOrDefault(n), children...).WithClock(deps.Clock), nil
	case "seq":
		children, err := buildChildren(n, deps)
		if err != nil {
			return nil, err
		}
		g, err := particles.NewSeqGroup(periodOrDefault(n), children...)
		if err != nil {
			return nil, err
		}
		return g.WithClock(deps.Clock), nil
	default:
		return nil, fmt.Errorf("unknown system type %q", n.Type)
	}
}

func buildChildren(n *SystemConfig, deps BuildDeps) ([]particles.System, error) {
	children := make([]particles.System, 0, len(n.Systems))
	for i, child := range n.Systems {
		sys, err := buildNode(child, deps)
		if err != nil {
			return nil, fmt.Errorf("%s child %d: %w", n.Type, i, err)
		}
		children = append(children, sys)
	}
	return children, nil
}

func buildLinear(n *SystemConfig, deps BuildDeps) (particles.System, error) {
	lp := particles.NewLinearParticles(deps.Renderer, vec3(n.Start), vec3(n.End)).
		WithClock(deps.Clock).
		WithSampler(deps.Sampler)

	var err error
	if lp, err = lp.WithPeriod(periodOrDefault(n)); err != nil {
		return nil, err
	}
	if n.Decay != 0 {
		if lp, err = lp.WithDecay(n.Decay); err != nil {
			return nil, err
		}
	}
	if len(n.Densities) > 0 {
		if lp, err = lp.WithDensities(n.Densities); err != nil {
			return nil, err
		}
	}
	if len(n.Locations) > 0 {
		if lp, err = lp.WithLocations(n.Locations); err != nil {
			return nil, err
		}
	}
	if len(n.Sizes) > 0 {
		if lp, err = lp.WithSizes(n.Sizes); err != nil {
			return nil, err
		}
	}
	if len(n.Colors) > 0 {
		colors := make([]particles.Color, len(n.Colors))
		for i, c := range n.Colors {
			colors[i] = c.Color
		}
		if lp, err = lp.WithColors(colors); err != nil {
			return nil, err
		}
	}
	if n.Easing != "" {
		e, ok := particles.EasingByName(n.Easing)
		if !ok {
			return nil, fmt.Errorf("unknown easing %q", n.Easing)
		}
		lp.WithEasing(e)
	}
	if n.Fade != nil {
		lp.WithFade(*n.Fade)
	}
	if n.Streak {
		if deps.Delta == nil {
			return nil, fmt.Errorf("streak emitter needs a frame-delta source")
		}
		lp.WithStreak(deps.Delta)
	}
	return lp, nil
}

func periodOrDefault(n *SystemConfig) float32 {
	if n.Period > 0 {
		return n.Period
	}
	return 1
}

func vec3(v []float32) mgl32.Vec3 {
	if len(v) != 3 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0], v[1], v[2]}
}
