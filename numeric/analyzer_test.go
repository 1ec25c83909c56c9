package numeric

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklens/model"
	"stocklens/testutil"
)

func records(rows ...model.InventoryRecord) []model.InventoryRecord { return rows }

func TestLoadRejectsMalformedRow(t *testing.T) {
	a := NewAnalyzer()
	err := a.Load(records(
		model.InventoryRecord{ProductID: "P1", Stock: 10, ReorderLevel: 5, Price: 2.50},
		model.InventoryRecord{ProductID: "P2", Stock: -1, ReorderLevel: 5, Price: 9.99},
	))

	var mr *model.ErrMalformedRow
	require.ErrorAs(t, err, &mr)
	assert.Equal(t, "Stock", mr.Field)
	assert.Zero(t, a.Len(), "failed load must not ingest anything")
}

func TestLoadRejectsDuplicateID(t *testing.T) {
	a := NewAnalyzer()
	err := a.Load(records(
		model.InventoryRecord{ProductID: "P1", Stock: 10, ReorderLevel: 5, Price: 2.50},
		model.InventoryRecord{ProductID: "P1", Stock: 3, ReorderLevel: 5, Price: 9.99},
	))

	var dup *model.ErrDuplicateID
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "P1", dup.ProductID)
	assert.Equal(t, 3, dup.Line, "second record sits on line 3 of a headered file")
}

func TestLoadKeepsPriorStateOnFailure(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(records(
		model.InventoryRecord{ProductID: "P1", Stock: 10, ReorderLevel: 5, Price: 2.50},
	)))

	err := a.Load(records(model.InventoryRecord{Stock: 1}))
	require.Error(t, err)

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, "P1", a.Records()[0].ProductID)
}

func TestSummarize(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(records(
		model.InventoryRecord{ProductID: "P1", Stock: 10, ReorderLevel: 5, Price: 2.50},
		model.InventoryRecord{ProductID: "P2", Stock: 3, ReorderLevel: 5, Price: 9.99},
	)))

	s := a.Summarize()
	assert.Equal(t, 2, s.Products)
	assert.Equal(t, 13, s.TotalStock)
	assert.InDelta(t, 6.245, s.MeanPrice, 1e-9)
	assert.InDelta(t, 6.245, s.MedianPrice, 1e-9)
	assert.InDelta(t, 5.29622, s.StdDevPrice, 1e-4) // sample std-dev
	assert.Equal(t, []string{"P2"}, s.Reorder)
}

func TestSummarizeStockConservation(t *testing.T) {
	rows := records(
		model.InventoryRecord{ProductID: "A", Stock: 7, ReorderLevel: 1, Price: 1},
		model.InventoryRecord{ProductID: "B", Stock: 0, ReorderLevel: 1, Price: 2},
		model.InventoryRecord{ProductID: "C", Stock: 125, ReorderLevel: 1, Price: 3},
	)
	want := 0
	for _, r := range rows {
		want += r.Stock
	}

	a := NewAnalyzer()
	require.NoError(t, a.Load(rows))
	assert.Equal(t, want, a.Summarize().TotalStock)
}

func TestSummarizeGeneratedRecords(t *testing.T) {
	rows := testutil.NewRNG(42).Records(200)
	wantStock := 0
	wantReorder := 0
	for _, r := range rows {
		wantStock += r.Stock
		if r.Stock < r.ReorderLevel {
			wantReorder++
		}
	}

	a := NewAnalyzer()
	require.NoError(t, a.Load(rows))
	s := a.Summarize()
	assert.Equal(t, wantStock, s.TotalStock)
	assert.Len(t, s.Reorder, wantReorder)
	assert.False(t, math.IsNaN(s.MeanPrice))
}

func TestSummarizeReorderBoundary(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(records(
		model.InventoryRecord{ProductID: "AT", Stock: 5, ReorderLevel: 5, Price: 1},
		model.InventoryRecord{ProductID: "BELOW", Stock: 4, ReorderLevel: 5, Price: 1},
		model.InventoryRecord{ProductID: "ABOVE", Stock: 6, ReorderLevel: 5, Price: 1},
	)))

	// stock == reorderLevel must not flag
	assert.Equal(t, []string{"BELOW"}, a.Summarize().Reorder)
}

func TestSummarizeEmptyInput(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(nil))

	s := a.Summarize()
	assert.Zero(t, s.Products)
	assert.Zero(t, s.TotalStock)
	assert.True(t, math.IsNaN(s.MeanPrice))
	assert.True(t, math.IsNaN(s.MedianPrice))
	assert.True(t, math.IsNaN(s.StdDevPrice))
	assert.Empty(t, s.Reorder)
}

func TestSummarizeSingleRecordStdDevUndefined(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(records(
		model.InventoryRecord{ProductID: "P1", Stock: 1, ReorderLevel: 0, Price: 4},
	)))

	s := a.Summarize()
	assert.Equal(t, 4.0, s.MeanPrice)
	assert.Equal(t, 4.0, s.MedianPrice)
	assert.True(t, math.IsNaN(s.StdDevPrice))
}

func TestMedianEvenCount(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(records(
		model.InventoryRecord{ProductID: "A", Price: 1},
		model.InventoryRecord{ProductID: "B", Price: 2},
		model.InventoryRecord{ProductID: "C", Price: 10},
		model.InventoryRecord{ProductID: "D", Price: 20},
	)))
	assert.InDelta(t, 6, a.Summarize().MedianPrice, 1e-12)
}

func TestReportTable(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(records(
		model.InventoryRecord{ProductID: "P1", Stock: 10, ReorderLevel: 5, Price: 2.50},
		model.InventoryRecord{ProductID: "P2", Stock: 3, ReorderLevel: 5, Price: 9.99},
	)))

	tbl := a.ReportTable()
	assert.Equal(t, []string{"ProductID", "Stock", "ReorderLevel", "Price", "NeedsReorder"}, tbl.Columns)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"P1", "10", "5", "2.50", "false"}, tbl.Rows[0])
	assert.Equal(t, []string{"P2", "3", "5", "9.99", "true"}, tbl.Rows[1])
	assert.Equal(t, []string{"TOTAL", "13", "", "6.25", "1"}, tbl.Rows[2])
}

func TestReportTableEmptyInputWritesCleanCSV(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(nil))

	var sb strings.Builder
	require.NoError(t, a.ReportTable().WriteCSV(&sb))
	assert.Equal(t,
		"ProductID,Stock,ReorderLevel,Price,NeedsReorder\n"+
			"TOTAL,0,,NaN,0\n",
		sb.String())
}

func TestBelowReorderTable(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.Load(records(
		model.InventoryRecord{ProductID: "P1", Stock: 10, ReorderLevel: 5, Price: 2.50},
		model.InventoryRecord{ProductID: "P2", Stock: 3, ReorderLevel: 5, Price: 9.99},
	)))

	tbl := a.BelowReorderTable()
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"P2", "3", "5"}, tbl.Rows[0])
}
