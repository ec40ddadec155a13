package particles

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned by Run when the system has not been set up
// (or has already been torn down). The call leaves the system untouched.
var ErrNotReady = errors.New("particles: system has not been set up for display")

// ValidationError reports the first parameter that violated its
// constraint during Setup or a With* builder call. Parameters are
// validated at setup time only; a caller who mutates keyframe arrays
// after Setup without calling Setup again is outside the contract.
type ValidationError struct {
	Field      string
	Value      float32
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("particles: invalid %s %v: %s", e.Field, e.Value, e.Constraint)
}

// IndexError reports internal group bookkeeping walking outside its
// child list. Given the non-empty and period invariants this should be
// unreachable; it is surfaced rather than silently recovered.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("particles: %s: index %d out of bounds for %d systems", e.Op, e.Index, e.Len)
}
