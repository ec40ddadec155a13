package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/linearfx/pkg/particles"
)

// ValueList is a keyframe array that unmarshals from either a YAML
// sequence of numbers or a compact space-separated scalar string,
// the same compact form the original effect configs use:
//
//	densities: [0.2, 0.8, 0.2]
//	densities: "0.2 0.8 0.2"
type ValueList []float32

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *ValueList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		fields := strings.Fields(node.Value)
		out := make([]float32, 0, len(fields))
		for _, f := range fields {
			val, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return fmt.Errorf("invalid value %q in compact list: %w", f, err)
			}
			out = append(out, float32(val))
		}
		*v = out
		return nil
	case yaml.SequenceNode:
		var out []float32
		if err := node.Decode(&out); err != nil {
			return err
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("value list must be a sequence or a compact string")
	}
}

// ColorValue is a color that unmarshals from either a palette name
// ("skyblue") or an [r, g, b, a] tuple of floats in [0, 1].
type ColorValue struct {
	particles.Color
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		col, ok := particles.ColorByName(strings.ToLower(node.Value))
		if !ok {
			return fmt.Errorf("unknown color name %q", node.Value)
		}
		c.Color = col
		return nil
	case yaml.SequenceNode:
		var ch []float32
		if err := node.Decode(&ch); err != nil {
			return err
		}
		if len(ch) != 4 {
			return fmt.Errorf("color tuple needs 4 components, got %d", len(ch))
		}
		c.Color = particles.NewColor(ch[0], ch[1], ch[2], ch[3])
		return nil
	default:
		return fmt.Errorf("color must be a palette name or an [r, g, b, a] tuple")
	}
}
