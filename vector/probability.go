package vector

import (
	"math"
	"sort"

	"stocklens/report"
)

// ProbEntry is one observed value pair with its count and probability.
type ProbEntry struct {
	ValueA float64
	ValueB float64
	Count  int
	P      float64
}

// ProbabilityTable holds joint or conditional probabilities over the
// observed value pairs of two attribute vectors.
//
// Defined is false when the table could not be computed at all (a label
// was never loaded, or the loaded set is empty); undefined results yield
// an empty table, never an error.
type ProbabilityTable struct {
	Kind    string // "joint" or "conditional"
	LabelA  string // target attribute
	LabelB  string // second/conditioning attribute
	N       int
	Defined bool
	Entries []ProbEntry
}

type pairKey struct{ a, b float64 }

func (a *Analyzer) pairCounts(labelA, labelB string) (map[pairKey]int, bool) {
	va, errA := a.Vector(labelA)
	vb, errB := a.Vector(labelB)
	if errA != nil || errB != nil || va.Dim() == 0 {
		return nil, false
	}
	counts := make(map[pairKey]int)
	for i := range va.Components {
		counts[pairKey{va.Components[i], vb.Components[i]}]++
	}
	return counts, true
}

func sortedEntries(counts map[pairKey]int) []ProbEntry {
	entries := make([]ProbEntry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, ProbEntry{ValueA: k.a, ValueB: k.b, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ValueA != entries[j].ValueA {
			return entries[i].ValueA < entries[j].ValueA
		}
		return entries[i].ValueB < entries[j].ValueB
	})
	return entries
}

// JointProbability computes P(labelA=a, labelB=b) = count(a∧b)/N over the
// loaded set, one entry per observed value pair, sorted by value pair.
// Unknown labels or an empty set give an undefined (empty) table.
func (a *Analyzer) JointProbability(labelA, labelB string) ProbabilityTable {
	t := ProbabilityTable{Kind: "joint", LabelA: labelA, LabelB: labelB}
	counts, ok := a.pairCounts(labelA, labelB)
	if !ok {
		return t
	}
	t.Defined = true
	t.N = a.dim
	t.Entries = sortedEntries(counts)
	for i := range t.Entries {
		t.Entries[i].P = float64(t.Entries[i].Count) / float64(t.N)
	}
	return t
}

// ConditionalProbability computes P(target=a | given=b) =
// count(a∧b)/count(b) for every observed value pair. An unknown given (or
// target) label or an empty set gives an undefined table rather than a
// division-by-zero failure.
func (a *Analyzer) ConditionalProbability(target, given string) ProbabilityTable {
	t := ProbabilityTable{Kind: "conditional", LabelA: target, LabelB: given}
	counts, ok := a.pairCounts(target, given)
	if !ok {
		return t
	}

	marginal := make(map[float64]int)
	for k, c := range counts {
		marginal[k.b] += c
	}

	t.Defined = true
	t.N = a.dim
	t.Entries = sortedEntries(counts)
	for i := range t.Entries {
		t.Entries[i].P = float64(t.Entries[i].Count) / float64(marginal[t.Entries[i].ValueB])
	}
	return t
}

// ConditionalGivenValue returns P(target=targetValue | given=givenValue)
// against the loaded set. The result is NaN whenever the conditioning
// event has zero occurrences, including when the given label itself is
// unknown.
func (a *Analyzer) ConditionalGivenValue(target, given string, targetValue, givenValue float64) float64 {
	counts, ok := a.pairCounts(target, given)
	if !ok {
		return math.NaN()
	}
	var joint, marginal int
	for k, c := range counts {
		if k.b == givenValue {
			marginal += c
			if k.a == targetValue {
				joint += c
			}
		}
	}
	if marginal == 0 {
		return math.NaN()
	}
	return float64(joint) / float64(marginal)
}

// ReportTable renders the probability table with the attribute labels as
// the first two column names, then Count and Probability. An undefined
// table renders as a header-only table.
func (t ProbabilityTable) ReportTable() *report.Table {
	name := "Joint Probabilities"
	if t.Kind == "conditional" {
		name = "Conditional Probabilities"
	}
	out := report.New(name, t.LabelA, t.LabelB, "Count", "Probability")
	if !t.Defined {
		return out
	}
	for _, e := range t.Entries {
		out.AddRow(
			report.FormatFloat(e.ValueA),
			report.FormatFloat(e.ValueB),
			report.FormatInt(e.Count),
			report.FormatFloat(e.P),
		)
	}
	return out
}
