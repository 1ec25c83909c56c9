package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutAndList(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStore(t.TempDir())

	require.NoError(t, s.Put(ctx, "reports/inventory.csv", []byte("a,b\n1,2\n")))
	require.NoError(t, s.Put(ctx, "charts/Stock_histogram.png", []byte{0x89, 'P', 'N', 'G'}))
	require.NoError(t, s.Put(ctx, "reports/inventory.csv", []byte("overwritten\n")))

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"charts/Stock_histogram.png", "reports/inventory.csv"}, all)

	reports, err := s.List(ctx, "reports/")
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/inventory.csv"}, reports)

	data, err := os.ReadFile(filepath.Join(s.root, "reports/inventory.csv"))
	require.NoError(t, err)
	assert.Equal(t, "overwritten\n", string(data))
}

func TestLocalStoreListEmptyRoot(t *testing.T) {
	s := NewLocalStore(filepath.Join(t.TempDir(), "never-created"))
	names, err := s.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

type failingStore struct {
	calls int
}

func (f *failingStore) Put(context.Context, string, []byte) error {
	f.calls++
	return errors.New("boom")
}

func (f *failingStore) List(context.Context, string) ([]string, error) { return nil, nil }

func TestPublishDir(t *testing.T) {
	ctx := context.Background()
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "report.csv"), []byte("x\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "charts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "charts", "a.png"), []byte{1}, 0o644))

	dst := NewLocalStore(t.TempDir())
	n, err := NewPublisher(dst).PublishDir(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	names, err := dst.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"charts/a.png", "report.csv"}, names)
}

func TestPublishDirSurfacesUploadFailure(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "report.csv"), []byte("x\n"), 0o644))

	_, err := NewPublisher(&failingStore{}).PublishDir(context.Background(), src)
	assert.ErrorContains(t, err, "boom")
}
