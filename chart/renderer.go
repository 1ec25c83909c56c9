// Package chart renders report tables as raster chart images: histogram,
// line (trend across records), scatter, and box plot.
//
// Every rendering call builds a fresh plot from its input table; no
// styling state is shared between calls. Requesting a column that is
// absent, non-numeric, or holds no defined values yields
// *ErrUnsupportedField instead of an empty image.
package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"stocklens/report"
)

// ErrUnsupportedField indicates a chart request over a column that cannot
// be plotted.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnsupportedField struct {
	Field  string
	Reason string
	cause  error
}

func (e *ErrUnsupportedField) Error() string {
	return fmt.Sprintf("unsupported chart field %q: %s", e.Field, e.Reason)
}

func (e *ErrUnsupportedField) Unwrap() error { return e.cause }

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
	histBins    = 10
)

// Renderer writes chart images for report tables into OutputDir.
type Renderer struct {
	OutputDir string
}

// NewRenderer creates a Renderer writing into dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{OutputDir: dir}
}

// column extracts a numeric column, dropping NaN cells. All-NaN or
// non-numeric columns are unsupported.
func (r *Renderer) column(t *report.Table, name string) ([]float64, error) {
	vals, err := t.NumericColumn(name)
	if err != nil {
		return nil, &ErrUnsupportedField{Field: name, Reason: "absent or non-numeric", cause: err}
	}
	defined := vals[:0]
	for _, v := range vals {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}
	if len(defined) == 0 {
		return nil, &ErrUnsupportedField{Field: name, Reason: "no defined values"}
	}
	return defined, nil
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(r.OutputDir, name)
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("save chart %s: %w", name, err)
	}
	return path, nil
}

// Histogram renders the distribution of one numeric column and returns
// the written file path.
func (r *Renderer) Histogram(t *report.Table, col string) (string, error) {
	vals, err := r.column(t, col)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Histogram", col)
	p.X.Label.Text = col
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(vals), histBins)
	if err != nil {
		return "", &ErrUnsupportedField{Field: col, Reason: "cannot bin values", cause: err}
	}
	p.Add(h)

	return r.save(p, fmt.Sprintf("%s_histogram.png", col))
}

// Line renders one numeric column as a trend across records, in row
// order, and returns the written file path.
func (r *Renderer) Line(t *report.Table, col string) (string, error) {
	vals, err := r.column(t, col)
	if err != nil {
		return "", err
	}

	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Trend", col)
	p.X.Label.Text = "Record"
	p.Y.Label.Text = col

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", &ErrUnsupportedField{Field: col, Reason: "cannot plot values", cause: err}
	}
	p.Add(line, points)

	return r.save(p, fmt.Sprintf("%s_line.png", col))
}

// Scatter renders two numeric columns against each other and returns the
// written file path. Rows where either value is undefined are skipped.
func (r *Renderer) Scatter(t *report.Table, xCol, yCol string) (string, error) {
	xs, err := t.NumericColumn(xCol)
	if err != nil {
		return "", &ErrUnsupportedField{Field: xCol, Reason: "absent or non-numeric", cause: err}
	}
	ys, err := t.NumericColumn(yCol)
	if err != nil {
		return "", &ErrUnsupportedField{Field: yCol, Reason: "absent or non-numeric", cause: err}
	}

	var pts plotter.XYs
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if len(pts) == 0 {
		return "", &ErrUnsupportedField{Field: xCol, Reason: "no defined value pairs"}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", yCol, xCol)
	p.X.Label.Text = xCol
	p.Y.Label.Text = yCol

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return "", &ErrUnsupportedField{Field: xCol, Reason: "cannot plot values", cause: err}
	}
	p.Add(s)

	return r.save(p, fmt.Sprintf("%s_%s_scatter.png", xCol, yCol))
}

// Box renders the distribution of one numeric column as a box plot and
// returns the written file path.
func (r *Renderer) Box(t *report.Table, col string) (string, error) {
	vals, err := r.column(t, col)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Box Plot", col)
	p.Y.Label.Text = col
	p.NominalX(col)

	b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(vals))
	if err != nil {
		return "", &ErrUnsupportedField{Field: col, Reason: "cannot plot values", cause: err}
	}
	p.Add(b)

	return r.save(p, fmt.Sprintf("%s_box.png", col))
}
