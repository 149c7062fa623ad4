package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DiskStorage stores files under a local directory. Each file has a JSON
// sidecar "<key>.meta" holding its name and content type.
type DiskStorage struct {
	cfg DiskConfig
}

type diskMeta struct {
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type"`
	ACL         ACL    `json:"acl"`
	Size        int64  `json:"size"`
}

// NewDisk creates the directory if needed and returns a disk backend.
func NewDisk(cfg DiskConfig) (*DiskStorage, error) {
	if cfg.Dir == "" {
		return nil, ErrInvalidConfig
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &DiskStorage{cfg: cfg}, nil
}

// Put writes r under a generated key, or the WithKey key.
func (s *DiskStorage) Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error) {
	o := &putOptions{acl: ACLPrivate}
	for _, opt := range opts {
		opt(o)
	}

	if s.cfg.MaxSize > 0 && size > s.cfg.MaxSize {
		return nil, ErrFileTooLarge
	}

	contentType, body, err := contentOf(r, o.contentType)
	if err != nil {
		return nil, err
	}

	key := o.key
	if key == "" {
		key = buildKey(o.tenant, o.prefix, contentType)
	}
	if !validKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	var src io.Reader = body
	if s.cfg.MaxSize > 0 {
		src = io.LimitReader(body, s.cfg.MaxSize+1)
	}
	written, err := io.Copy(f, &ctxReader{ctx: ctx, r: src})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if s.cfg.MaxSize > 0 && written > s.cfg.MaxSize {
		_ = os.Remove(path)
		return nil, ErrFileTooLarge
	}

	meta := diskMeta{Name: o.name, ContentType: contentType, ACL: o.acl, Size: written}
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := os.WriteFile(path+".meta", data, 0o644); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return &FileInfo{
		Key:         key,
		Name:        o.name,
		ContentType: contentType,
		ACL:         o.acl,
		Size:        written,
	}, nil
}

// Get opens a stored file.
func (s *DiskStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	if !validKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	f, err := os.Open(s.path(key))
	if err != nil {
		return nil, diskError(err, ErrNotFound)
	}
	return f, nil
}

// Delete removes a stored file and its metadata.
func (s *DiskStorage) Delete(_ context.Context, key string) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if err := os.Remove(s.path(key)); err != nil {
		return diskError(err, ErrDeleteFailed)
	}
	_ = os.Remove(s.path(key) + ".meta")
	return nil
}

// Stat reads the metadata of a stored file.
func (s *DiskStorage) Stat(_ context.Context, key string) (*FileInfo, error) {
	if !validKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	data, err := os.ReadFile(s.path(key) + ".meta")
	if err != nil {
		return nil, diskError(err, ErrNotFound)
	}
	var meta diskMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return &FileInfo{
		Key:         key,
		Name:        meta.Name,
		ContentType: meta.ContentType,
		ACL:         meta.ACL,
		Size:        meta.Size,
	}, nil
}

// URL joins the configured base URL and the key. Disk files are never
// signed, so expiry options are ignored.
func (s *DiskStorage) URL(_ context.Context, key string, opts ...URLOption) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	o := &urlOptions{}
	for _, opt := range opts {
		opt(o)
	}

	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	u := strings.TrimSuffix(s.cfg.BaseURL, "/") + "/" + strings.Join(segments, "/")
	if o.downloadName != "" {
		u += "?download=" + url.QueryEscape(o.downloadName)
	}
	return u, nil
}

func (s *DiskStorage) path(key string) string {
	return filepath.Join(s.cfg.Dir, filepath.FromSlash(key))
}

func diskError(err, fallback error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	default:
		return fmt.Errorf("%w: %v", fallback, err)
	}
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

var _ Storage = (*DiskStorage)(nil)
