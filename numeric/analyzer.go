// Package numeric analyzes tabular inventory records: aggregate price and
// stock statistics, reorder flagging, and the flat report table.
package numeric

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"

	"stocklens/model"
	"stocklens/report"
)

// Summary holds the aggregates for one loaded record set.
//
// Price aggregates are NaN when they are undefined: mean and median for an
// empty set, standard deviation for fewer than two records. The standard
// deviation is the sample (n-1) estimator.
type Summary struct {
	Products    int
	TotalStock  int
	MeanPrice   float64
	MedianPrice float64
	StdDevPrice float64
	// Reorder lists the ProductIDs with stock strictly below their
	// reorder level, in input order.
	Reorder []string
}

// Analyzer computes descriptive statistics over inventory records.
// Lifecycle is load, then any number of reads; it keeps no other state.
// Not safe for concurrent use.
type Analyzer struct {
	records []model.InventoryRecord
}

// NewAnalyzer creates an empty Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Load validates and ingests an ordered record set, replacing any
// previously loaded data. On error nothing is replaced: the analyzer keeps
// the records from the last successful Load.
//
// A row failing field validation yields *model.ErrMalformedRow; a repeated
// ProductID yields *model.ErrDuplicateID, with positions numbered as in a
// headered CSV file (first record is line 2).
func (a *Analyzer) Load(records []model.InventoryRecord) error {
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

// Records returns the loaded records in input order.
func (a *Analyzer) Records() []model.InventoryRecord {
	return slices.Clone(a.records)
}

// Summarize computes the aggregate summary for the loaded set. An empty
// set produces NaN price aggregates and an empty reorder list, not an
// error.
func (a *Analyzer) Summarize() Summary {
	s := Summary{
		Products:    len(a.records),
		MeanPrice:   math.NaN(),
		MedianPrice: math.NaN(),
		StdDevPrice: math.NaN(),
	}

	prices := make([]float64, 0, len(a.records))
	for _, r := range a.records {
		s.TotalStock += r.Stock
		prices = append(prices, r.Price)
		if r.NeedsReorder() {
			s.Reorder = append(s.Reorder, r.ProductID)
		}
	}

	if len(prices) > 0 {
		s.MeanPrice = stat.Mean(prices, nil)
		s.MedianPrice = median(prices)
	}
	if len(prices) > 1 {
		s.StdDevPrice = stat.StdDev(prices, nil)
	}
	return s
}

// BelowReorder returns the subset of records needing reorder, in input
// order.
func (a *Analyzer) BelowReorder() []model.InventoryRecord {
	var out []model.InventoryRecord
	for _, r := range a.records {
		if r.NeedsReorder() {
			out = append(out, r)
		}
	}
	return out
}

// ReportTable returns one row per record in input order, followed by a
// trailing aggregate row. Columns, in order: ProductID, Stock,
// ReorderLevel, Price, NeedsReorder. The aggregate row carries the total
// stock, the mean price, and the reorder count under "TOTAL".
func (a *Analyzer) ReportTable() *report.Table {
	t := report.New("Numeric Inventory Report",
		"ProductID", "Stock", "ReorderLevel", "Price", "NeedsReorder")

	for _, r := range a.records {
		t.AddRow(
			r.ProductID,
			report.FormatInt(r.Stock),
			report.FormatInt(r.ReorderLevel),
			report.FormatPrice(r.Price),
			report.FormatBool(r.NeedsReorder()),
		)
	}

	s := a.Summarize()
	t.AddRow(
		"TOTAL",
		report.FormatInt(s.TotalStock),
		"",
		report.FormatPrice(s.MeanPrice),
		report.FormatInt(len(s.Reorder)),
	)
	return t
}

// RecordsTable returns the per-record rows without the trailing aggregate
// row. Chart rendering consumes this table so aggregates never skew a
// distribution.
func (a *Analyzer) RecordsTable() *report.Table {
	t := report.New("Numeric Inventory Records",
		"ProductID", "Stock", "ReorderLevel", "Price", "NeedsReorder")
	for _, r := range a.records {
		t.AddRow(
			r.ProductID,
			report.FormatInt(r.Stock),
			report.FormatInt(r.ReorderLevel),
			report.FormatPrice(r.Price),
			report.FormatBool(r.NeedsReorder()),
		)
	}
	return t
}

// BelowReorderTable returns the below-reorder subset as its own table.
func (a *Analyzer) BelowReorderTable() *report.Table {
	t := report.New("Items Below Reorder Level",
		"ProductID", "Stock", "ReorderLevel")
	for _, r := range a.BelowReorder() {
		t.AddRow(r.ProductID, report.FormatInt(r.Stock), report.FormatInt(r.ReorderLevel))
	}
	return t
}

// median of a non-empty sample; averages the middle pair for even n.
func median(values []float64) float64 {
	sorted := slices.Clone(values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
