package particles

// Validation helpers shared by Setup, the With* builders and the
// config loader. Each returns the first violated constraint as a
// *ValidationError.

func checkPeriod(period float32) error {
	if period <= 0 {
		return &ValidationError{Field: "period", Value: period, Constraint: "must be greater than zero"}
	}
	return nil
}

func checkDecay(decay float32) error {
	if decay < 0 {
		return &ValidationError{Field: "decay", Value: decay, Constraint: "must not be negative"}
	}
	return nil
}

func checkDensities(densities []float32) error {
	return checkUnitInterval("densities", densities)
}

func checkLocations(locations []float32) error {
	return checkUnitInterval("locations", locations)
}

func checkUnitInterval(field string, values []float32) error {
	if len(values) == 0 {
		return &ValidationError{Field: field, Value: 0, Constraint: "needs at least one keyframe"}
	}
	for _, v := range values {
		if v < 0 || v > 1 {
			return &ValidationError{Field: field, Value: v, Constraint: "must be between 0 and 1 inclusive"}
		}
	}
	return nil
}

func checkColors(colors []Color) error {
	if len(colors) == 0 {
		return &ValidationError{Field: "colors", Value: 0, Constraint: "needs at least one keyframe"}
	}
	return nil
}

func checkSizes(sizes []float32) error {
	if len(sizes) == 0 {
		return &ValidationError{Field: "sizes", Value: 0, Constraint: "needs at least one keyframe"}
	}
	for _, s := range sizes {
		if s < 0 {
			return &ValidationError{Field: "sizes", Value: s, Constraint: "must not be negative"}
		}
	}
	return nil
}
