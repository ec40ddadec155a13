package particles

import "github.com/chewxy/math32"

// Easing reshapes a normalized time ratio in [0, 1] before keyframe
// sampling. The default everywhere is EaseLinear, which leaves sampling
// untouched; the other curves bend how an emitter travels through its
// keyframes without changing the keyframes themselves.
type Easing func(t float32) float32

func EaseLinear(t float32) float32 { return t }

func EaseInQuad(t float32) float32 { return t * t }

func EaseOutQuad(t float32) float32 { return 1 - (1-t)*(1-t) }

func EaseInCubic(t float32) float32 { return t * t * t }

func EaseOutCubic(t float32) float32 { return 1 - math32.Pow(1-t, 3) }

func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math32.Pow(-2*t+2, 3)/2
}

// EaseSmoothStep is the classic cubic smoothstep, a gentle in-out.
func EaseSmoothStep(t float32) float32 { return t * t * (3 - 2*t) }

var easings = map[string]Easing{
	"":              EaseLinear,
	"Linear":        EaseLinear,
	"EaseIn":        EaseInQuad,
	"EaseOut":       EaseOutQuad,
	"EaseInCubic":   EaseInCubic,
	"EaseOutCubic":  EaseOutCubic,
	"EaseInOut":     EaseInOutCubic,
	"FastInOutWeak": EaseSmoothStep,
}

// EasingByName resolves an easing curve from its preset name. The empty
// string resolves to EaseLinear.
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}
