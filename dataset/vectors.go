package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"

	"stocklens/codec"
	"stocklens/model"
)

// ReadVectors decodes a labeled vector dataset from r using c (codec.Default
// when nil). The expected shape is a JSON array of {label, components}.
func ReadVectors(r io.Reader, c codec.Codec) ([]model.AttributeVector, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read vector data: %w", err)
	}
	var vectors []model.AttributeVector
	if err := c.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("decode vector data (%s): %w", c.Name(), err)
	}
	return vectors, nil
}

// ReadVectorsFile reads a vector dataset from disk, decompressing .gz and
// .lz4 files transparently based on the file extension.
func ReadVectorsFile(path string, c codec.Codec) ([]model.AttributeVector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vector file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer zr.Close()
		r = zr
	case ".lz4":
		r = lz4.NewReader(f)
	}
	return ReadVectors(r, c)
}

// WriteVectorsFile encodes vectors with c (codec.Default when nil) and
// writes them to path, compressing when the extension is .gz or .lz4.
// Exists so generated fixtures and exports round-trip through the same
// format the loader reads.
func WriteVectorsFile(path string, vectors []model.AttributeVector, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(vectors)
	if err != nil {
		return fmt.Errorf("encode vector data (%s): %w", c.Name(), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create vector file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("write gzip stream: %w", err)
		}
		return zw.Close()
	case ".lz4":
		zw := lz4.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("write lz4 stream: %w", err)
		}
		return zw.Close()
	default:
		_, err := f.Write(data)
		return err
	}
}
