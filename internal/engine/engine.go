package engine

import (
	"errors"
	"fmt"
)

// ErrNonPositiveDivisor is the only domain error the engine knows. Internal
// callers and tests see it; boundary adapters map it to the 0.0 sentinel.
var ErrNonPositiveDivisor = errors.New("non-positive divisor")

// Stress computes axial stress, sigma = F/A. Units are the caller's
// responsibility and must be consistent.
func Stress(force, area float64) (float64, error) {
	if area <= 0 {
		return 0, fmt.Errorf("stress: area %g: %w", area, ErrNonPositiveDivisor)
	}
	return force / area, nil
}

// Displacement computes linear elastic axial elongation, delta = FL/(AE).
func Displacement(force, length, area, modulus float64) (float64, error) {
	if area <= 0 || modulus <= 0 {
		return 0, fmt.Errorf("displacement: area %g, modulus %g: %w", area, modulus, ErrNonPositiveDivisor)
	}
	return (force * length) / (area * modulus), nil
}

// Strain computes elastic strain, epsilon = sigma/E.
func Strain(stress, modulus float64) (float64, error) {
	if modulus <= 0 {
		return 0, fmt.Errorf("strain: modulus %g: %w", modulus, ErrNonPositiveDivisor)
	}
	return stress / modulus, nil
}

// AxialStiffness computes member axial stiffness, k = AE/L.
func AxialStiffness(area, modulus, length float64) (float64, error) {
	if area <= 0 || modulus <= 0 || length <= 0 {
		return 0, fmt.Errorf("stiffness: area %g, modulus %g, length %g: %w", area, modulus, length, ErrNonPositiveDivisor)
	}
	return area * modulus / length, nil
}
