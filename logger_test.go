package stocklens

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func TestWithDataset(t *testing.T) {
	var buf bytes.Buffer
	log := captureLogger(&buf).WithDataset("numeric")

	log.LogLoad("input/sample_numeric.csv", 2, nil)

	out := buf.String()
	assert.Contains(t, out, "load completed")
	assert.Contains(t, out, "dataset=numeric")
	assert.Contains(t, out, "records=2")
}

func TestLogLoadError(t *testing.T) {
	var buf bytes.Buffer
	log := captureLogger(&buf).WithDataset("vector")

	log.LogLoad("input/vectors.json", 0, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "load failed")
	assert.Contains(t, out, "dataset=vector")
	assert.Contains(t, out, "boom")
}

func TestNoopLoggerSilent(t *testing.T) {
	log := NoopLogger()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
