// Package config loads particle effect presets from YAML files and
// builds them into runnable particle system trees.
//
// A preset file declares named effects; each effect is a system node of
// type "linear", "sync" or "seq". Group nodes nest further systems, so
// a preset can describe arbitrarily deep compositions:
//
//	effects:
//	  - name: cube-edges
//	    system:
//	      type: sync
//	      period: 3
//	      systems:
//	        - type: linear
//	          start: [-1, 1.5, 3]
//	          end: [1, 1.5, 3]
//	          decay: 1.4
//	          locations: "0 0 1 1"
//	          colors: [cyan, [0, 0.75, 1, 1], blue]
//
// Scalar keyframe arrays accept either a YAML sequence of numbers or a
// compact space-separated string ("0 0.5 1"). Colors accept palette
// names or [r, g, b, a] tuples.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/linearfx/pkg/particles"
)

// EffectsConfig is the root of a preset file.
type EffectsConfig struct {
	Effects []EffectConfig `yaml:"effects"`
}

// EffectConfig is one named, buildable particle system tree.
type EffectConfig struct {
	Name   string        `yaml:"name"`
	System *SystemConfig `yaml:"system"`
}

// SystemConfig describes one node of an effect tree. Type selects
// which of the remaining fields apply.
type SystemConfig struct {
	// Type is "linear", "sync" or "seq".
	Type string `yaml:"type"`

	// Period in seconds. 0 means unset: group nodes inherit it from
	// their parent at setup time, root nodes default to 1.
	Period float32 `yaml:"period"`

	// Systems are the children of a sync or seq node.
	Systems []*SystemConfig `yaml:"systems"`

	// Linear emitter fields.
	Start     []float32    `yaml:"start"`     // 3 components
	End       []float32    `yaml:"end"`       // 3 components
	Decay     float32      `yaml:"decay"`     // 0 means unset (default 1)
	Densities ValueList    `yaml:"densities"` // spawn chances in [0,1]
	Locations ValueList    `yaml:"locations"` // line ratios in [0,1]
	Sizes     ValueList    `yaml:"sizes"`
	Colors    []ColorValue `yaml:"colors"`
	Easing    string       `yaml:"easing"` // preset easing name, default Linear
	Streak    bool         `yaml:"streak"` // spawn segments instead of points
	Fade      *bool        `yaml:"fade"`   // default true
}

// Load parses a preset document from memory.
func Load(data []byte) (*EffectsConfig, error) {
	var cfg EffectsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effects YAML: %w", err)
	}
	if err := validateEffects(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a preset file.
func LoadFile(path string) (*EffectsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects file %s: %w", path, err)
	}
	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("invalid effects file %s: %w", path, err)
	}
	return cfg, nil
}

// Effect returns the named effect, if present.
func (c *EffectsConfig) Effect(name string) (*EffectConfig, bool) {
	for i := range c.Effects {
		if c.Effects[i].Name == name {
			return &c.Effects[i], true
		}
	}
	return nil, false
}

// Names returns the effect names in declaration order.
func (c *EffectsConfig) Names() []string {
	names := make([]string, 0, len(c.Effects))
	for i := range c.Effects {
		names = append(names, c.Effects[i].Name)
	}
	return names
}

func validateEffects(cfg *EffectsConfig) error {
	if len(cfg.Effects) == 0 {
		return fmt.Errorf("effects file declares no effects")
	}
	seen := make(map[string]bool, len(cfg.Effects))
	for i := range cfg.Effects {
		e := &cfg.Effects[i]
		if e.Name == "" {
			return fmt.Errorf("effect %d has no name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate effect name %q", e.Name)
		}
		seen[e.Name] = true
		if e.System == nil {
			return fmt.Errorf("effect %q has no system", e.Name)
		}
		if err := validateNode(e.System); err != nil {
			return fmt.Errorf("effect %q: %w", e.Name, err)
		}
	}
	return nil
}

func validateNode(n *SystemConfig) error {
	switch n.Type {
	case "linear":
		if len(n.Systems) != 0 {
			return fmt.Errorf("linear node cannot have child systems")
		}
		for _, ep := range [][]float32{n.Start, n.End} {
			if ep != nil && len(ep) != 3 {
				return fmt.Errorf("linear endpoints need 3 components, got %d", len(ep))
			}
		}
		if n.Easing != "" {
			if _, ok := particles.EasingByName(n.Easing); !ok {
				return fmt.Errorf("unknown easing %q", n.Easing)
			}
		}
	case "sync", "seq":
		if len(n.Systems) == 0 {
			return fmt.Errorf("%s node needs at least one child system", n.Type)
		}
		for i, child := range n.Systems {
			if child == nil {
				return fmt.Errorf("%s node child %d is empty", n.Type, i)
			}
			if err := validateNode(child); err != nil {
				return err
			}
		}
	case "":
		return fmt.Errorf("system node is missing a type")
	default:
		return fmt.Errorf("unknown system type %q", n.Type)
	}
	return nil
}
