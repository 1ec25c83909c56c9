package vector

import (
	"fmt"

	"stocklens/report"
)

// Combinations returns all r-element combinations of the loaded labels, in
// load order. r outside [1, len(labels)] gives an empty result.
func (a *Analyzer) Combinations(r int) [][]string {
	labels := a.Labels()
	if r < 1 || r > len(labels) {
		return nil
	}
	var out [][]string
	combo := make([]string, 0, r)
	var walk func(start int)
	walk = func(start int) {
		if len(combo) == r {
			out = append(out, append([]string(nil), combo...))
			return
		}
		for i := start; i < len(labels); i++ {
			combo = append(combo, labels[i])
			walk(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	walk(0)
	return out
}

// Permutations returns all r-element permutations of the loaded labels, in
// load order. r outside [1, len(labels)] gives an empty result.
func (a *Analyzer) Permutations(r int) [][]string {
	labels := a.Labels()
	if r < 1 || r > len(labels) {
		return nil
	}
	var out [][]string
	used := make([]bool, len(labels))
	perm := make([]string, 0, r)
	var walk func()
	walk = func() {
		if len(perm) == r {
			out = append(out, append([]string(nil), perm...))
			return
		}
		for i := range labels {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, labels[i])
			walk()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}
	walk()
	return out
}

// CombinationsTable exports the r-combinations of the loaded labels as a
// table with columns Label1..LabelR.
func (a *Analyzer) CombinationsTable(r int) *report.Table {
	return tupleTable("Label Combinations", a.Combinations(r), r)
}

// PermutationsTable exports the r-permutations of the loaded labels as a
// table with columns Label1..LabelR.
func (a *Analyzer) PermutationsTable(r int) *report.Table {
	return tupleTable("Label Permutations", a.Permutations(r), r)
}

func tupleTable(name string, tuples [][]string, r int) *report.Table {
	cols := make([]string, r)
	for i := range cols {
		cols[i] = fmt.Sprintf("Label%d", i+1)
	}
	t := report.New(name, cols...)
	for _, tuple := range tuples {
		t.AddRow(tuple...)
	}
	return t
}
