package artifact

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// publishConcurrency bounds parallel uploads; classroom runs publish a
// handful of files, so a small fan-out is plenty.
const publishConcurrency = 4

// Publisher copies the files of a finished run into a Store.
type Publisher struct {
	store Store
}

// NewPublisher creates a Publisher writing into store.
func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// PublishDir uploads every regular file under dir, keyed by its
// dir-relative path, and returns the number of files published. The first
// upload failure cancels the remaining ones.
func (p *Publisher) PublishDir(ctx context.Context, dir string) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(publishConcurrency)

	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		count++
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read artifact %s: %w", name, err)
			}
			if err := p.store.Put(ctx, name, data); err != nil {
				return fmt.Errorf("publish artifact %s: %w", name, err)
			}
			return nil
		})
		return nil
	})
	if err != nil {
		_ = g.Wait() // walk error takes precedence
		return 0, err
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return count, nil
}
