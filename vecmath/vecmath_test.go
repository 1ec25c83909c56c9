package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dot(tt.a, tt.b), 1e-12)
		})
	}
}

func TestDotCommutative(t *testing.T) {
	a := []float64{1.5, -2.25, 3.75, 0.5}
	b := []float64{-0.25, 4, 2, -1}
	assert.Equal(t, Dot(a, b), Dot(b, a))
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5, Norm([]float64{3, 4}), 1e-12)
	assert.Zero(t, Norm([]float64{0, 0, 0}))
	assert.Zero(t, Norm(nil))
}

func TestUnit(t *testing.T) {
	t.Run("Basis", func(t *testing.T) {
		u := Unit([]float64{1, 0})
		require.NotNil(t, u)
		assert.Equal(t, []float64{1, 0}, u)
	})

	t.Run("Scaled", func(t *testing.T) {
		u := Unit([]float64{3, 4})
		require.NotNil(t, u)
		assert.InDelta(t, 0.6, u[0], 1e-12)
		assert.InDelta(t, 0.8, u[1], 1e-12)
		assert.InDelta(t, 1, Norm(u), 1e-12)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		assert.Nil(t, Unit([]float64{0, 0}))
	})

	t.Run("InputUntouched", func(t *testing.T) {
		v := []float64{3, 4}
		Unit(v)
		assert.Equal(t, []float64{3, 4}, v)
	})
}

func TestProjection(t *testing.T) {
	t.Run("OntoAxis", func(t *testing.T) {
		p := Projection([]float64{2, 3}, []float64{1, 0})
		require.NotNil(t, p)
		assert.InDelta(t, 2, p[0], 1e-12)
		assert.InDelta(t, 0, p[1], 1e-12)
	})

	t.Run("ScalarMatchesVectorMagnitude", func(t *testing.T) {
		a := []float64{2, 3}
		b := []float64{1, 1}
		s := ScalarProjection(a, b)
		p := Projection(a, b)
		require.NotNil(t, p)
		assert.InDelta(t, math.Abs(s), Norm(p), 1e-12)
	})

	t.Run("OntoZero", func(t *testing.T) {
		assert.Nil(t, Projection([]float64{1, 2}, []float64{0, 0}))
		assert.True(t, math.IsNaN(ScalarProjection([]float64{1, 2}, []float64{0, 0})))
	})
}

func TestAngleDegrees(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Orthogonal", []float64{1, 0}, []float64{0, 1}, 90},
		{"Parallel", []float64{1, 2}, []float64{2, 4}, 0},
		{"Opposite", []float64{1, 0}, []float64{-1, 0}, 180},
		{"FortyFive", []float64{1, 0}, []float64{1, 1}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AngleDegrees(tt.a, tt.b), 1e-6)
		})
	}
}

func TestAngleDegreesSymmetric(t *testing.T) {
	a := []float64{1.5, -2.5, 3}
	b := []float64{2, 0.5, -1}
	assert.Equal(t, AngleDegrees(a, b), AngleDegrees(b, a))
}

func TestAngleDegreesSelfIsZero(t *testing.T) {
	v := []float64{0.1, 0.2, 0.3}
	assert.InDelta(t, 0, AngleDegrees(v, v), 1e-6)
}

func TestAngleDegreesZeroVector(t *testing.T) {
	assert.True(t, math.IsNaN(AngleDegrees([]float64{0, 0}, []float64{1, 1})))
	assert.True(t, math.IsNaN(AngleDegrees([]float64{1, 1}, []float64{0, 0})))
}

// Parallel vectors can push |cos| past 1 through rounding; acos must not
// return NaN for them.
func TestAngleDegreesClampsCosine(t *testing.T) {
	a := []float64{0.1, 0.2, 0.3}
	b := []float64{0.3, 0.6, 0.9}
	got := AngleDegrees(a, b)
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, 0, got, 1e-6)
}

func TestOrthogonal(t *testing.T) {
	assert.True(t, Orthogonal([]float64{1, 0}, []float64{0, 1}, 1e-9))
	assert.False(t, Orthogonal([]float64{1, 1}, []float64{0, 1}, 1e-9))
	assert.True(t, Orthogonal([]float64{1, 1e-12}, []float64{-1e-12, 1}, 1e-9))
}
