package model

import "fmt"

// InventoryRecord is one row of numeric inventory input.
// Identity is ProductID; a loaded set never contains two records with the
// same ProductID.
type InventoryRecord struct {
	ProductID    string
	Stock        int
	ReorderLevel int
	Price        float64
}

// NeedsReorder reports whether the record is below its reorder threshold.
// The comparison is strict: a record sitting exactly at its threshold does
// not need reordering.
func (r InventoryRecord) NeedsReorder() bool {
	return r.Stock < r.ReorderLevel
}

// Validate checks field-level constraints that the loaders enforce.
func (r InventoryRecord) Validate() error {
	switch {
	case r.ProductID == "":
		return &ErrMalformedRow{Field: "ProductID", Reason: "empty"}
	case r.Stock < 0:
		return &ErrMalformedRow{Field: "Stock", Reason: fmt.Sprintf("negative value %d", r.Stock)}
	case r.ReorderLevel < 0:
		return &ErrMalformedRow{Field: "ReorderLevel", Reason: fmt.Sprintf("negative value %d", r.ReorderLevel)}
	case r.Price < 0:
		return &ErrMalformedRow{Field: "Price", Reason: fmt.Sprintf("negative value %g", r.Price)}
	}
	return nil
}

// AttributeVector is one labeled observation vector. The label names the
// attribute (e.g. "Stock", "Price") and the components hold one observation
// per product, in product order. All vectors loaded together must share one
// dimensionality.
type AttributeVector struct {
	Label      string    `json:"label"`
	Components []float64 `json:"components"`
}

// Dim returns the vector's dimensionality.
func (v AttributeVector) Dim() int { return len(v.Components) }

// CategoryRecord is one row of categorical inventory input.
type CategoryRecord struct {
	ProductID   string
	ProductName string
	Category    string
	HazardClass string
	Supplier    string
}

// Validate checks field-level constraints that the loaders enforce.
func (r CategoryRecord) Validate() error {
	switch {
	case r.ProductID == "":
		return &ErrMalformedRow{Field: "ProductID", Reason: "empty"}
	case r.Category == "":
		return &ErrMalformedRow{Field: "Category", Reason: "empty"}
	}
	return nil
}
