// Package category analyzes descriptive inventory data: item counts
// grouped by category, supplier, and hazard class.
package category

import (
	"slices"
	"sort"

	"stocklens/model"
	"stocklens/report"
)

// Analyzer counts categorical inventory records along their grouping
// dimensions. Lifecycle is load, then reads. Not safe for concurrent use.
type Analyzer struct {
	records []model.CategoryRecord
}

// NewAnalyzer creates an empty Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Load validates and ingests a record set, replacing any previously loaded
// data. Validation failures and duplicate ProductIDs reject the whole load
// and leave prior state unchanged; duplicate positions are numbered as in
// a headered CSV file (first record is line 2).
func (a *Analyzer) Load(records []model.CategoryRecord) error {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, dup := seen[r.ProductID]; dup {
			return &model.ErrDuplicateID{ProductID: r.ProductID, Line: i + 2}
		}
		seen[r.ProductID] = struct{}{}
	}
	a.records = slices.Clone(records)
	return nil
}

// Len returns the number of loaded records.
func (a *Analyzer) Len() int { return len(a.records) }

// CountByCategory returns item counts keyed by Category.
func (a *Analyzer) CountByCategory() map[string]int {
	return a.countBy(func(r model.CategoryRecord) string { return r.Category })
}

// CountBySupplier returns item counts keyed by Supplier.
func (a *Analyzer) CountBySupplier() map[string]int {
	return a.countBy(func(r model.CategoryRecord) string { return r.Supplier })
}

// CountByHazardClass returns item counts keyed by HazardClass.
func (a *Analyzer) CountByHazardClass() map[string]int {
	return a.countBy(func(r model.CategoryRecord) string { return r.HazardClass })
}

func (a *Analyzer) countBy(key func(model.CategoryRecord) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range a.records {
		counts[key(r)]++
	}
	return counts
}

// ReportTable returns the grouped counts as one table, one row per
// (dimension, value) pair, ordered by dimension then value. Columns, in
// order: Dimension, Value, Count.
func (a *Analyzer) ReportTable() *report.Table {
	t := report.New("Categorical Inventory Report", "Dimension", "Value", "Count")
	for _, g := range []struct {
		dim    string
		counts map[string]int
	}{
		{"Category", a.CountByCategory()},
		{"HazardClass", a.CountByHazardClass()},
		{"Supplier", a.CountBySupplier()},
	} {
		keys := make([]string, 0, len(g.counts))
		for k := range g.counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.AddRow(g.dim, k, report.FormatInt(g.counts[k]))
		}
	}
	return t
}
