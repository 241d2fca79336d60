// Package iox opens files that may be gzip or zstd compressed, picking the
// codec from the file suffix.
package iox

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	SuffixGzip = ".gz"
	SuffixZstd = ".zst"
)

// TrimCompression returns path without its compression suffix.
func TrimCompression(path string) string {
	for _, s := range []string{SuffixGzip, SuffixZstd} {
		if strings.HasSuffix(path, s) {
			return strings.TrimSuffix(path, s)
		}
	}

	return path
}

// Open returns a reader over the decompressed content of path.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}

	switch {
	case strings.HasSuffix(path, SuffixGzip):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip.NewReader: %w", err)
		}

		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(path, SuffixZstd):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd.NewReader: %w", err)
		}

		return &readCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), f}}, nil
	default:
		return f, nil
	}
}

// Create truncates path and returns a writer compressing by suffix. Close
// flushes the codec before closing the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("os.Create: %w", err)
	}

	switch {
	case strings.HasSuffix(path, SuffixGzip):
		zw := gzip.NewWriter(f)
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case strings.HasSuffix(path, SuffixZstd):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd.NewWriter: %w", err)
		}

		return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	default:
		return f, nil
	}
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	return closeAll(r.closers)
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	return closeAll(w.closers)
}

func closeAll(closers []io.Closer) error {
	var errs []error

	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
