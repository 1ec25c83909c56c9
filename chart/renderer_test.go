package chart

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklens/report"
)

func fixtureTable() *report.Table {
	t := report.New("records", "ProductID", "Stock", "Price")
	t.AddRow("P1", "10", "2.50")
	t.AddRow("P2", "3", "9.99")
	t.AddRow("P3", "15", "4.99")
	t.AddRow("P4", "8", "19.99")
	return t
}

func assertArtifact(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "chart file must not be empty")
}

func TestHistogram(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Histogram(fixtureTable(), "Stock")
	require.NoError(t, err)
	assert.Contains(t, path, "Stock_histogram.png")
	assertArtifact(t, path)
}

func TestLine(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Line(fixtureTable(), "Price")
	require.NoError(t, err)
	assertArtifact(t, path)
}

func TestScatter(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Scatter(fixtureTable(), "Stock", "Price")
	require.NoError(t, err)
	assert.Contains(t, path, "Stock_Price_scatter.png")
	assertArtifact(t, path)
}

func TestBox(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Box(fixtureTable(), "Price")
	require.NoError(t, err)
	assertArtifact(t, path)
}

func TestUnsupportedFields(t *testing.T) {
	r := NewRenderer(t.TempDir())
	tbl := fixtureTable()

	t.Run("MissingColumn", func(t *testing.T) {
		_, err := r.Histogram(tbl, "Weight")
		var uf *ErrUnsupportedField
		require.ErrorAs(t, err, &uf)
		assert.Equal(t, "Weight", uf.Field)
	})

	t.Run("NonNumericColumn", func(t *testing.T) {
		_, err := r.Line(tbl, "ProductID")
		var uf *ErrUnsupportedField
		require.ErrorAs(t, err, &uf)
	})

	t.Run("AllUndefinedColumn", func(t *testing.T) {
		nan := report.New("t", "V")
		nan.AddRow("NaN")
		nan.AddRow("NaN")
		_, err := r.Box(nan, "V")
		var uf *ErrUnsupportedField
		require.ErrorAs(t, err, &uf)
		assert.Equal(t, "no defined values", uf.Reason)
	})

	t.Run("ScatterMissingY", func(t *testing.T) {
		_, err := r.Scatter(tbl, "Stock", "Weight")
		var uf *ErrUnsupportedField
		require.ErrorAs(t, err, &uf)
		assert.Equal(t, "Weight", uf.Field)
	})
}

func TestScatterSkipsUndefinedPairs(t *testing.T) {
	tbl := report.New("t", "X", "Y")
	tbl.AddRow("1", "2")
	tbl.AddRow("NaN", "3")
	tbl.AddRow("4", "NaN")
	tbl.AddRow("5", "6")

	r := NewRenderer(t.TempDir())
	path, err := r.Scatter(tbl, "X", "Y")
	require.NoError(t, err)
	assertArtifact(t, path)
}
