package stocklens

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"stocklens/artifact"
	"stocklens/category"
	"stocklens/chart"
	"stocklens/config"
	"stocklens/dataset"
	"stocklens/numeric"
	"stocklens/report"
	"stocklens/vector"
)

// RunResult is what one analysis run hands back to the front end: the
// tables to display and the artifact files written to the output dir.
type RunResult struct {
	Tables    []*report.Table
	Artifacts []string
}

// Session owns one run's configuration, logger, and analyzers. The CLI
// shell constructs a single Session and invokes the Run* methods from the
// menu. Not safe for concurrent use.
type Session struct {
	cfg config.Config
	log *Logger

	Numeric    *numeric.Analyzer
	Vectors    *vector.Analyzer
	Categories *category.Analyzer

	store    *artifact.LocalStore
	renderer *chart.Renderer
}

// NewSession creates a Session for the given configuration. A nil logger
// disables logging.
func NewSession(cfg config.Config, log *Logger) *Session {
	if log == nil {
		log = NoopLogger()
	}
	return &Session{
		cfg:        cfg,
		log:        log,
		Numeric:    numeric.NewAnalyzer(),
		Vectors:    vector.NewAnalyzer(),
		Categories: category.NewAnalyzer(),
		store:      artifact.NewLocalStore(cfg.OutputDir),
		renderer:   chart.NewRenderer(cfg.OutputDir),
	}
}

// Config returns the session configuration.
func (s *Session) Config() config.Config { return s.cfg }

// exportTable writes a table as CSV into the output dir and records the
// artifact name on the result.
func (s *Session) exportTable(ctx context.Context, res *RunResult, name string, t *report.Table) error {
	var buf bytes.Buffer
	err := t.WriteCSV(&buf)
	if err == nil {
		err = s.store.Put(ctx, name, buf.Bytes())
	}
	s.log.LogExport(name, len(t.Rows), err)
	if err != nil {
		return err
	}
	res.Tables = append(res.Tables, t)
	res.Artifacts = append(res.Artifacts, name)
	return nil
}

// renderChart runs one chart call, logging failures without aborting the
// run (an all-NaN column should cost one image, not the analysis).
func (s *Session) renderChart(res *RunResult, path string, err error) {
	s.log.LogChart(path, err)
	if err == nil {
		res.Artifacts = append(res.Artifacts, path)
	}
}

// RunNumeric loads the numeric inventory CSV, exports the report and the
// below-reorder subset, and renders the numeric charts.
func (s *Session) RunNumeric(ctx context.Context) (*RunResult, error) {
	log := s.log.WithDataset("numeric")
	records, err := dataset.ReadInventoryFile(s.cfg.NumericCSV)
	if err != nil {
		log.LogLoad(s.cfg.NumericCSV, 0, err)
		return nil, err
	}
	if err := s.Numeric.Load(records); err != nil {
		log.LogLoad(s.cfg.NumericCSV, 0, err)
		return nil, err
	}
	log.LogLoad(s.cfg.NumericCSV, s.Numeric.Len(), nil)

	res := &RunResult{}
	if err := s.exportTable(ctx, res, "numeric_report.csv", s.Numeric.ReportTable()); err != nil {
		return nil, err
	}
	if err := s.exportTable(ctx, res, "below_reorder.csv", s.Numeric.BelowReorderTable()); err != nil {
		return nil, err
	}

	if s.cfg.Charts {
		data := s.Numeric.RecordsTable()
		path, err := s.renderer.Histogram(data, "Stock")
		s.renderChart(res, path, err)
		path, err = s.renderer.Histogram(data, "Price")
		s.renderChart(res, path, err)
		path, err = s.renderer.Line(data, "Stock")
		s.renderChart(res, path, err)
		path, err = s.renderer.Scatter(data, "Stock", "Price")
		s.renderChart(res, path, err)
		path, err = s.renderer.Box(data, "Price")
		s.renderChart(res, path, err)
	}
	return res, nil
}

// RunVector loads the vector dataset and exports pairwise metrics, the
// joint and conditional probabilities of the first two vectors, and the
// label combinatorics.
func (s *Session) RunVector(ctx context.Context) (*RunResult, error) {
	log := s.log.WithDataset("vector")
	vectors, err := dataset.ReadVectorsFile(s.cfg.VectorFile, nil)
	if err != nil {
		log.LogLoad(s.cfg.VectorFile, 0, err)
		return nil, err
	}
	if err := s.Vectors.Load(vectors); err != nil {
		log.LogLoad(s.cfg.VectorFile, 0, err)
		return nil, err
	}
	log.LogLoad(s.cfg.VectorFile, s.Vectors.Len(), nil)

	res := &RunResult{}
	if err := s.exportTable(ctx, res, "vector_metrics.csv", s.Vectors.ReportTable()); err != nil {
		return nil, err
	}

	if labels := s.Vectors.Labels(); len(labels) >= 2 {
		joint := s.Vectors.JointProbability(labels[0], labels[1])
		if err := s.exportTable(ctx, res, "joint_probability.csv", joint.ReportTable()); err != nil {
			return nil, err
		}
		cond := s.Vectors.ConditionalProbability(labels[0], labels[1])
		if err := s.exportTable(ctx, res, "conditional_probability.csv", cond.ReportTable()); err != nil {
			return nil, err
		}

		if err := s.exportTable(ctx, res, "label_combinations.csv", s.Vectors.CombinationsTable(2)); err != nil {
			return nil, err
		}
		if err := s.exportTable(ctx, res, "label_permutations.csv", s.Vectors.PermutationsTable(2)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// RunCategory loads the categorical CSV and exports the grouped counts.
func (s *Session) RunCategory(ctx context.Context) (*RunResult, error) {
	log := s.log.WithDataset("category")
	records, err := dataset.ReadCategoryFile(s.cfg.CategoryCSV)
	if err != nil {
		log.LogLoad(s.cfg.CategoryCSV, 0, err)
		return nil, err
	}
	if err := s.Categories.Load(records); err != nil {
		log.LogLoad(s.cfg.CategoryCSV, 0, err)
		return nil, err
	}
	log.LogLoad(s.cfg.CategoryCSV, s.Categories.Len(), nil)

	res := &RunResult{}
	if err := s.exportTable(ctx, res, "category_report.csv", s.Categories.ReportTable()); err != nil {
		return nil, err
	}
	return res, nil
}

// RunAll runs every analysis and, when configured, publishes the output
// directory.
func (s *Session) RunAll(ctx context.Context) (*RunResult, error) {
	all := &RunResult{}
	for _, run := range []func(context.Context) (*RunResult, error){
		s.RunNumeric, s.RunVector, s.RunCategory,
	} {
		res, err := run(ctx)
		if err != nil {
			return nil, err
		}
		all.Tables = append(all.Tables, res.Tables...)
		all.Artifacts = append(all.Artifacts, res.Artifacts...)
	}

	if s.cfg.Publish.Enabled {
		if _, err := s.Publish(ctx); err != nil {
			return nil, err
		}
	}
	return all, nil
}

// Publish uploads the output directory to the configured S3-compatible
// endpoint and returns the number of artifacts published.
func (s *Session) Publish(ctx context.Context) (int, error) {
	pub := s.cfg.Publish
	client, err := minio.New(pub.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(pub.AccessKey, pub.SecretKey, ""),
		Secure: pub.UseTLS,
	})
	if err != nil {
		s.log.LogPublish(pub.Endpoint, 0, err)
		return 0, fmt.Errorf("connect to %s: %w", pub.Endpoint, err)
	}

	store := artifact.NewMinioStore(client, pub.Bucket, pub.Prefix)
	n, err := artifact.NewPublisher(store).PublishDir(ctx, s.cfg.OutputDir)
	s.log.LogPublish(pub.Endpoint, n, err)
	return n, err
}
