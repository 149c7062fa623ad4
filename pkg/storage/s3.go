package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrymomot/forms/pkg/upload"
)

// S3Storage stores files in an S3-compatible bucket.
type S3Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	cfg       Config
}

// NewS3 creates an S3 backend.
func NewS3(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		}
	})

	return &S3Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		cfg:       cfg,
	}, nil
}

// Put uploads r. The content type is sniffed unless WithContentType is set.
func (s *S3Storage) Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error) {
	o := &putOptions{acl: s.cfg.DefaultACL}
	for _, opt := range opts {
		opt(o)
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

	acl := types.ObjectCannedACLPrivate
	if o.acl == ACLPublicRead {
		acl = types.ObjectCannedACLPublicRead
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           acl,
	}
	if o.name != "" {
		input.Metadata = map[string]string{"filename": o.name}
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return nil, wrapS3Error(err, ErrUploadFailed)
	}

	return &FileInfo{
		Key:         key,
		Name:        o.name,
		ContentType: contentType,
		ACL:         o.acl,
		Size:        size,
	}, nil
}

// Get downloads a file.
func (s *S3Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrNotFound)
	}
	return out.Body, nil
}

// Delete removes a file.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return wrapS3Error(err, ErrDeleteFailed)
	}
	return nil
}

// Stat returns the metadata of a stored file without downloading it.
func (s *S3Storage) Stat(ctx context.Context, key string) (*FileInfo, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrNotFound)
	}

	return &FileInfo{
		Key:         key,
		Name:        out.Metadata["filename"],
		ContentType: aws.ToString(out.ContentType),
		ACL:         s.cfg.DefaultACL,
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

// URL returns a presigned GET URL, or the public URL with WithPublic.
func (s *S3Storage) URL(ctx context.Context, key string, opts ...URLOption) (string, error) {
	o := &urlOptions{expiry: DefaultURLExpiry}
	for _, opt := range opts {
		opt(o)
	}

	if o.forcePublic {
		return s.publicURL(key), nil
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}
	if o.downloadName != "" {
		input.ResponseContentDisposition = aws.String(fmt.Sprintf("attachment; filename=%q", o.downloadName))
	}

	req, err := s.presigner.PresignGetObject(ctx, input, func(po *s3.PresignOptions) {
		po.Expires = o.expiry
	})
	if err != nil {
		return "", wrapS3Error(err, ErrPresignFailed)
	}
	return req.URL, nil
}

func (s *S3Storage) publicURL(key string) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		endpoint := strings.TrimSuffix(s.cfg.Endpoint, "/")
		if s.cfg.PathStyle {
			return fmt.Sprintf("%s/%s/%s", endpoint, s.cfg.Bucket, key)
		}
		return fmt.Sprintf("%s/%s", endpoint, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

// contentOf returns the content type and a rewindable body for r.
func contentOf(r io.Reader, contentType string) (string, io.ReadSeeker, error) {
	if contentType == "" {
		ct, body := upload.DetectSeekable(r)
		return ct, body, nil
	}
	if rs, ok := r.(io.ReadSeeker); ok {
		return contentType, rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("storage: read input: %w", err)
	}
	return contentType, bytes.NewReader(data), nil
}

var _ Storage = (*S3Storage)(nil)
