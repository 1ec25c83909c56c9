package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"stocklens/model"
)

// header maps column names to their position, case-insensitively.
type header map[string]int

func readHeader(r *csv.Reader, required []string) (header, error) {
	row, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := make(header, len(row))
	for i, name := range row {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := h[strings.ToLower(name)]; !ok {
			return nil, model.NewMalformedRow(1, name, "missing column", nil)
		}
	}
	return h, nil
}

func (h header) field(row []string, name string) (string, bool) {
	i, ok := h[strings.ToLower(name)]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// ReadInventoryCSV parses numeric inventory rows from r. Expected columns:
// ProductID, Stock, ReorderLevel, Price (any order, case-insensitive).
// A repeated ProductID yields *model.ErrDuplicateID carrying the file line
// of the second occurrence.
func ReadInventoryCSV(r io.Reader) ([]model.InventoryRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	h, err := readHeader(cr, []string{"ProductID", "Stock", "ReorderLevel", "Price"})
	if err != nil {
		return nil, err
	}

	var records []model.InventoryRecord
	seen := make(map[string]struct{})
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, model.NewMalformedRow(line, "", "unreadable row", err)
		}

		rec := model.InventoryRecord{}
		rec.ProductID, _ = h.field(row, "ProductID")
		if _, dup := seen[rec.ProductID]; dup {
			return nil, &model.ErrDuplicateID{ProductID: rec.ProductID, Line: line}
		}
		seen[rec.ProductID] = struct{}{}

		if rec.Stock, err = intField(h, row, "Stock", line); err != nil {
			return nil, err
		}
		if rec.ReorderLevel, err = intField(h, row, "ReorderLevel", line); err != nil {
			return nil, err
		}
		if rec.Price, err = floatField(h, row, "Price", line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadInventoryFile reads a numeric inventory CSV from disk.
func ReadInventoryFile(path string) ([]model.InventoryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory file: %w", err)
	}
	defer f.Close()
	return ReadInventoryCSV(f)
}

// ReadCategoryCSV parses categorical inventory rows from r. Expected
// columns: ProductID, ProductName, Category, HazardClass, Supplier.
func ReadCategoryCSV(r io.Reader) ([]model.CategoryRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	h, err := readHeader(cr, []string{"ProductID", "ProductName", "Category", "HazardClass", "Supplier"})
	if err != nil {
		return nil, err
	}

	var records []model.CategoryRecord
	seen := make(map[string]struct{})
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, model.NewMalformedRow(line, "", "unreadable row", err)
		}
		rec := model.CategoryRecord{}
		rec.ProductID, _ = h.field(row, "ProductID")
		if _, dup := seen[rec.ProductID]; dup {
			return nil, &model.ErrDuplicateID{ProductID: rec.ProductID, Line: line}
		}
		seen[rec.ProductID] = struct{}{}
		rec.ProductName, _ = h.field(row, "ProductName")
		rec.Category, _ = h.field(row, "Category")
		rec.HazardClass, _ = h.field(row, "HazardClass")
		rec.Supplier, _ = h.field(row, "Supplier")
		records = append(records, rec)
	}
	return records, nil
}

// ReadCategoryFile reads a categorical inventory CSV from disk.
func ReadCategoryFile(path string) ([]model.CategoryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open category file: %w", err)
	}
	defer f.Close()
	return ReadCategoryCSV(f)
}

func intField(h header, row []string, name string, line int) (int, error) {
	s, ok := h.field(row, name)
	if !ok || s == "" {
		return 0, model.NewMalformedRow(line, name, "missing value", nil)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, model.NewMalformedRow(line, name, fmt.Sprintf("%q is not an integer", s), err)
	}
	return v, nil
}

func floatField(h header, row []string, name string, line int) (float64, error) {
	s, ok := h.field(row, name)
	if !ok || s == "" {
		return 0, model.NewMalformedRow(line, name, "missing value", nil)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, model.NewMalformedRow(line, name, fmt.Sprintf("%q is not a number", s), err)
	}
	return v, nil
}
