package storage

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/forms/pkg/upload"
)

// PutUpload stores a validated upload. The content type is sniffed from the
// spooled file; the original name is recorded. Returns ErrEmptyFile when
// nothing was sent.
func PutUpload(ctx context.Context, s Storage, f upload.File, opts ...Option) (*FileInfo, error) {
	if !f.Sent() {
		return nil, ErrEmptyFile
	}

	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("storage: open upload %q: %w", f.Name, err)
	}
	defer r.Close()

	size := f.Size
	if st, err := r.Stat(); err == nil {
		size = st.Size()
	}
	if size == 0 {
		return nil, ErrEmptyFile
	}

	opts = append([]Option{WithName(f.Name)}, opts...)
	return s.Put(ctx, r, size, opts...)
}

// PutUploads stores several uploads concurrently, at most limit at a time
// (zero means no limit). Results are keyed like files. On the first failure
// the remaining uploads are cancelled and the error is returned.
func PutUploads(ctx context.Context, s Storage, files map[string]upload.File, limit int, opts ...Option) (map[string]*FileInfo, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	out := make(map[string]*FileInfo, len(files))

	for _, name := range slices.Sorted(maps.Keys(files)) {
		f := files[name]
		g.Go(func() error {
			info, err := PutUpload(ctx, s, f, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			out[name] = info
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Uploads picks the sent files out of a form's cleaned data. Both
// upload.File and *upload.Image values are collected.
func Uploads(data map[string]any) map[string]upload.File {
	out := make(map[string]upload.File)
	for name, v := range data {
		switch f := v.(type) {
		case upload.File:
			if !f.IsEmpty() {
				out[name] = f
			}
		case *upload.Image:
			if f != nil && !f.IsEmpty() {
				out[name] = f.File
			}
		}
	}
	return out
}
