// Package vector analyzes labeled attribute vectors: pairwise geometry
// (dot product, magnitudes, unit vectors, projection, angle), joint and
// conditional probabilities over observed value pairs, and label
// combinatorics.
//
// Vectors are columns of the source data: the label names an attribute and
// the components hold one observation per product. Every vector in a load
// therefore shares one dimensionality.
package vector

import (
	"fmt"
	"slices"

	"stocklens/model"
	"stocklens/report"
	"stocklens/vecmath"
)

// ErrDuplicateLabel indicates two vectors with the same label in one load.
// Labels are the query handles, so they must be unique.
type ErrDuplicateLabel struct {
	Label string
}

func (e *ErrDuplicateLabel) Error() string {
	return fmt.Sprintf("duplicate vector label %q", e.Label)
}

// Metrics holds the pairwise geometry of two equal-dimension vectors.
//
// UnitA/UnitB/Projection are nil and AngleDegrees/ScalarProjection are NaN
// when the corresponding operand has zero magnitude; undefined results are
// reported, never raised.
type Metrics struct {
	LabelA string
	LabelB string
	Dot    float64
	NormA  float64
	NormB  float64
	UnitA  []float64
	UnitB  []float64
	// ScalarProjection and Projection project A onto B.
	ScalarProjection float64
	Projection       []float64
	AngleDegrees     float64
	Orthogonal       bool
}

// orthoTol is the dot-product tolerance for the orthogonality flag.
const orthoTol = 1e-9

// ComputeMetrics returns the pairwise metrics of two vectors, which need
// not be loaded. The only error is *model.ErrDimensionMismatch.
func ComputeMetrics(a, b model.AttributeVector) (Metrics, error) {
	if a.Dim() != b.Dim() {
		return Metrics{}, &model.ErrDimensionMismatch{Expected: a.Dim(), Actual: b.Dim(), Label: b.Label}
	}
	return Metrics{
		LabelA:           a.Label,
		LabelB:           b.Label,
		Dot:              vecmath.Dot(a.Components, b.Components),
		NormA:            vecmath.Norm(a.Components),
		NormB:            vecmath.Norm(b.Components),
		UnitA:            vecmath.Unit(a.Components),
		UnitB:            vecmath.Unit(b.Components),
		ScalarProjection: vecmath.ScalarProjection(a.Components, b.Components),
		Projection:       vecmath.Projection(a.Components, b.Components),
		AngleDegrees:     vecmath.AngleDegrees(a.Components, b.Components),
		Orthogonal:       vecmath.Orthogonal(a.Components, b.Components, orthoTol),
	}, nil
}

// Analyzer computes pairwise geometry and probabilities over a loaded
// vector set. Lifecycle is load, then reads. Not safe for concurrent use.
type Analyzer struct {
	vectors []model.AttributeVector
	byLabel map[string]int
	dim     int
}

// NewAnalyzer creates an empty Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{byLabel: map[string]int{}}
}

// Load validates and ingests a vector set, replacing any previously loaded
// data. The load is all-or-nothing: on error the analyzer keeps the set
// from the last successful Load.
//
// All vectors must share the dimensionality of the first vector; a
// mismatch yields *model.ErrDimensionMismatch naming the offending label.
func (a *Analyzer) Load(vectors []model.AttributeVector) error {
	byLabel := make(map[string]int, len(vectors))
	dim := 0
	for i, v := range vectors {
		if i == 0 {
			dim = v.Dim()
		} else if v.Dim() != dim {
			return &model.ErrDimensionMismatch{Expected: dim, Actual: v.Dim(), Label: v.Label}
		}
		if _, dup := byLabel[v.Label]; dup {
			return &ErrDuplicateLabel{Label: v.Label}
		}
		byLabel[v.Label] = i
	}

	a.vectors = slices.Clone(vectors)
	a.byLabel = byLabel
	a.dim = dim
	return nil
}

// Len returns the number of loaded vectors.
func (a *Analyzer) Len() int { return len(a.vectors) }

// Dim returns the shared dimensionality of the loaded set, 0 when empty.
func (a *Analyzer) Dim() int { return a.dim }

// Labels returns the loaded labels in load order.
func (a *Analyzer) Labels() []string {
	out := make([]string, len(a.vectors))
	for i, v := range a.vectors {
		out[i] = v.Label
	}
	return out
}

// Vector returns the loaded vector with the given label.
func (a *Analyzer) Vector(label string) (model.AttributeVector, error) {
	i, ok := a.byLabel[label]
	if !ok {
		return model.AttributeVector{}, &model.ErrUnknownLabel{Label: label}
	}
	return a.vectors[i], nil
}

// PairwiseMetrics returns the geometry of two loaded vectors identified by
// label. Unknown labels yield *model.ErrUnknownLabel.
func (a *Analyzer) PairwiseMetrics(labelA, labelB string) (Metrics, error) {
	va, err := a.Vector(labelA)
	if err != nil {
		return Metrics{}, err
	}
	vb, err := a.Vector(labelB)
	if err != nil {
		return Metrics{}, err
	}
	return ComputeMetrics(va, vb)
}

// ReportTable returns one row per unordered label pair, ordered lexically
// by (LabelA, LabelB). Columns, in order: LabelA, LabelB, DotProduct,
// NormA, NormB, AngleDegrees, ScalarProjection, Orthogonal.
func (a *Analyzer) ReportTable() *report.Table {
	t := report.New("Vector Metrics Report",
		"LabelA", "LabelB", "DotProduct", "NormA", "NormB",
		"AngleDegrees", "ScalarProjection", "Orthogonal")

	labels := a.Labels()
	slices.Sort(labels)
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			m, err := a.PairwiseMetrics(labels[i], labels[j])
			if err != nil {
				// Labels come from the loaded set; unreachable.
				continue
			}
			t.AddRow(
				m.LabelA,
				m.LabelB,
				report.FormatFloat(m.Dot),
				report.FormatFloat(m.NormA),
				report.FormatFloat(m.NormB),
				report.FormatFloat(m.AngleDegrees),
				report.FormatFloat(m.ScalarProjection),
				report.FormatBool(m.Orthogonal),
			)
		}
	}
	return t
}
