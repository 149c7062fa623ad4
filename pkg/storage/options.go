package storage

import "time"

// Option configures Put.
type Option func(*putOptions)

type putOptions struct {
	key         string
	prefix      string
	tenant      string
	name        string
	contentType string
	acl         ACL
}

// WithKey sets the exact storage key instead of a generated one.
func WithKey(key string) Option {
	return func(o *putOptions) {
		o.key = key
	}
}

// WithPrefix puts generated keys under prefix, after the tenant.
func WithPrefix(prefix string) Option {
	return func(o *putOptions) {
		o.prefix = prefix
	}
}

// WithTenant makes the tenant ID the first key segment.
func WithTenant(id string) Option {
	return func(o *putOptions) {
		o.tenant = id
	}
}

// WithName records the original file name.
func WithName(name string) Option {
	return func(o *putOptions) {
		o.name = name
	}
}

// WithContentType skips content sniffing.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		o.contentType = ct
	}
}

// WithACL overrides the backend's default ACL.
func WithACL(acl ACL) Option {
	return func(o *putOptions) {
		o.acl = acl
	}
}

// URLOption configures URL.
type URLOption func(*urlOptions)

type urlOptions struct {
	downloadName string
	expiry       time.Duration
	forcePublic  bool
}

// DefaultURLExpiry is the lifetime of signed URLs.
const DefaultURLExpiry = 15 * time.Minute

// WithExpiry sets the lifetime of a signed URL.
func WithExpiry(d time.Duration) URLOption {
	return func(o *urlOptions) {
		if d > 0 {
			o.expiry = d
		}
	}
}

// WithDownload asks for a Content-Disposition attachment named filename.
func WithDownload(filename string) URLOption {
	return func(o *urlOptions) {
		o.downloadName = filename
	}
}

// WithPublic returns the unsigned public URL.
func WithPublic() URLOption {
	return func(o *urlOptions) {
		o.forcePublic = true
	}
}
