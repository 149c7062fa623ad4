package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files.
type Storage interface {
	// Put stores the content of r. size is the content length.
	// Options set the key, prefix, tenant, ACL and content type.
	Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error)

	// Get opens a stored file. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, key string) error

	// URL returns an address the file can be fetched from.
	URL(ctx context.Context, key string, opts ...URLOption) (string, error)
}

// Config configures the S3 backend.
type Config struct {
	Bucket    string `env:"STORAGE_S3_BUCKET"`
	AccessKey string `env:"STORAGE_S3_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_S3_SECRET_KEY"`

	// Endpoint points at MinIO or another S3-compatible service.
	Endpoint string `env:"STORAGE_S3_ENDPOINT"`
	Region   string `env:"STORAGE_S3_REGION" envDefault:"us-east-1"`

	// PublicURL is a CDN prefix used for public URLs.
	PublicURL  string `env:"STORAGE_S3_PUBLIC_URL"`
	DefaultACL ACL    `env:"STORAGE_S3_ACL" envDefault:"private"`

	// PathStyle is required by MinIO.
	PathStyle bool `env:"STORAGE_S3_PATH_STYLE" envDefault:"false"`
}

// DiskConfig configures the local disk backend.
type DiskConfig struct {
	Dir string `env:"STORAGE_DIR" envDefault:"./uploads"`

	// BaseURL is the public prefix the directory is served under.
	BaseURL string `env:"STORAGE_BASE_URL" envDefault:"/uploads"`

	// MaxSize rejects larger files. Zero means no limit.
	MaxSize int64 `env:"STORAGE_MAX_SIZE" envDefault:"0"`
}

// FileInfo describes a stored file.
type FileInfo struct {
	Key         string
	Name        string
	ContentType string
	ACL         ACL
	Size        int64
}

// ACL is the access level of a stored file.
type ACL string

const (
	ACLPrivate    ACL = "private"
	ACLPublicRead ACL = "public-read"
)

const DefaultRegion = "us-east-1"

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.DefaultACL == "" {
		c.DefaultACL = ACLPrivate
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
