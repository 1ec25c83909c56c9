// Package vecmath provides the vector-geometry primitives used by the
// vector analyzer: dot product, Euclidean norm, unit vectors, projections,
// and angles.
//
// All functions assume equal-length operands; the caller (the analyzer)
// enforces dimensionality before reaching this package. Results that are
// mathematically undefined for zero-magnitude operands are reported as NaN
// or a nil slice, never as an error.
package vecmath

import (
	"math"
	"slices"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm calculates the Euclidean (L2) magnitude of v.
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Unit returns a normalized copy of v, or nil when v has zero magnitude.
func Unit(v []float64) []float64 {
	n := Norm(v)
	if n == 0 {
		return nil
	}
	dst := slices.Clone(v)
	for i := range dst {
		dst[i] /= n
	}
	return dst
}

// ScalarProjection returns the length of a's component along b,
// NaN when b has zero magnitude.
func ScalarProjection(a, b []float64) float64 {
	n := Norm(b)
	if n == 0 {
		return math.NaN()
	}
	return Dot(a, b) / n
}

// Projection returns the vector projection of a onto b, nil when b has
// zero magnitude.
func Projection(a, b []float64) []float64 {
	u := Unit(b)
	if u == nil {
		return nil
	}
	s := Dot(a, u)
	for i := range u {
		u[i] *= s
	}
	return u
}

// AngleDegrees returns the angle between a and b in degrees, NaN when
// either operand has zero magnitude. The cosine is clamped to [-1, 1]
// before acos so floating-point overshoot cannot produce a domain error.
func AngleDegrees(a, b []float64) float64 {
	denom := Norm(a) * Norm(b)
	if denom == 0 {
		return math.NaN()
	}
	cos := Dot(a, b) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// Orthogonal reports whether a and b are perpendicular within tol.
func Orthogonal(a, b []float64, tol float64) bool {
	return math.Abs(Dot(a, b)) <= tol
}
