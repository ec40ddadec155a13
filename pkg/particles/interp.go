package particles

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Keyframe interpolation. A keyframe array of length n represents
// breakpoints evenly spaced across [0, total]; values between
// breakpoints are blended linearly. A single-element array is a
// constant. total must be positive, which Setup guarantees before any
// of these run.

// FloatAt returns the interpolated value from values at the ratio
// elapsed/total.
func FloatAt(values []float32, elapsed, total float32) (float32, error) {
	low, high, weight, err := breakpoints(len(values), elapsed, total)
	if err != nil {
		return 0, err
	}
	if low == high {
		return values[low], nil
	}
	return values[low]*weight + values[high]*(1-weight), nil
}

// ColorAt returns the interpolated color from colors at the ratio
// elapsed/total. Each channel blends independently.
func ColorAt(colors []Color, elapsed, total float32) (Color, error) {
	low, high, weight, err := breakpoints(len(colors), elapsed, total)
	if err != nil {
		return Color{}, err
	}
	if low == high {
		return colors[low], nil
	}
	a, b := colors[low], colors[high]
	return Color{
		R: a.R*weight + b.R*(1-weight),
		G: a.G*weight + b.G*(1-weight),
		B: a.B*weight + b.B*(1-weight),
		A: a.A*weight + b.A*(1-weight),
	}, nil
}

// LocationAt interpolates the location-ratio keyframes at elapsed/total
// and maps the result onto the segment from start to end: ratio 0 is
// start, ratio 1 is end.
func LocationAt(locations []float32, start, end mgl32.Vec3, elapsed, total float32) (mgl32.Vec3, error) {
	ratio, err := FloatAt(locations, elapsed, total)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return start.Mul(1 - ratio).Add(end.Mul(ratio)), nil
}

// breakpoints resolves the bracketing keyframe indexes for the ratio
// elapsed/total and the blend weight of the lower one.
func breakpoints(n int, elapsed, total float32) (low, high int, weight float32, err error) {
	if n == 0 {
		return 0, 0, 0, &IndexError{Op: "interpolate keyframes", Index: 0, Len: 0}
	}
	last := n - 1
	v := float32(last) * (elapsed / total)
	low = int(math32.Floor(v))
	high = int(math32.Ceil(v))
	if low < 0 {
		low = 0
	}
	if low > last {
		low = last
	}
	if high < 0 {
		high = 0
	}
	if high > last {
		high = last
	}
	return low, high, float32(high) - v, nil
}
