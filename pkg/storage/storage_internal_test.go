package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		cfg.applyDefaults()
		require.Equal(t, DefaultRegion, cfg.Region)
		require.Equal(t, ACLPrivate, cfg.DefaultACL)
	})

	t.Run("keeps values", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Region: "eu-west-1", DefaultACL: ACLPublicRead}
		cfg.applyDefaults()
		require.Equal(t, "eu-west-1", cfg.Region)
		require.Equal(t, ACLPublicRead, cfg.DefaultACL)
	})

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Bucket: "b", AccessKey: "a", SecretKey: "s"}, false},
		{"missing bucket", Config{AccessKey: "a", SecretKey: "s"}, true},
		{"missing access key", Config{Bucket: "b", SecretKey: "s"}, true},
		{"missing secret key", Config{Bucket: "b", AccessKey: "a"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSanitizePathSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"avatars", "avatars"},
		{"my folder", "my_folder"},
		{"/path/to/", "path_to"},
		{"../../../etc/passwd", "___etc_passwd"},
		{"..hidden", "hidden"},
		{"файл", "____"},
		{"my-file_name.v2", "my-file_name.v2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizePathSegment(tt.input))
		})
	}
}

func TestBuildKey(t *testing.T) {
	t.Parallel()

	const uuidRe = `[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`

	require.Regexp(t, `^`+uuidRe+`\.png$`, buildKey("", "", "image/png"))
	require.Regexp(t, `^avatars/`+uuidRe+`\.jpg$`, buildKey("", "avatars", "image/jpeg"))
	require.Regexp(t, `^acme/docs/`+uuidRe+`\.pdf$`, buildKey("acme", "docs", "application/pdf"))
	require.Regexp(t, `^`+uuidRe+`\.bin$`, buildKey("", "", "application/x-unknown"))
	require.NotEqual(t, buildKey("", "", "image/png"), buildKey("", "", "image/png"))
}

func TestValidKey(t *testing.T) {
	t.Parallel()

	for key, want := range map[string]bool{
		"a.png":          true,
		"tenant/a/b.png": true,
		"":               false,
		"/abs.png":       false,
		"../escape":      false,
		"a/../../b":      false,
		"a//b":           false,
		`a\b`:            false,
	} {
		require.Equal(t, want, validKey(key), key)
	}
}

func TestS3Storage_publicURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"aws", Config{Bucket: "b", Region: "us-east-1"}, "https://b.s3.us-east-1.amazonaws.com/k/f.jpg"},
		{"cdn", Config{Bucket: "b", PublicURL: "https://cdn.example.com/"}, "https://cdn.example.com/k/f.jpg"},
		{"path style", Config{Bucket: "b", Endpoint: "http://localhost:9000", PathStyle: true}, "http://localhost:9000/b/k/f.jpg"},
		{"virtual host", Config{Bucket: "b", Endpoint: "http://localhost:9000/"}, "http://localhost:9000/k/f.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &S3Storage{cfg: tt.cfg}
			require.Equal(t, tt.want, s.publicURL("k/f.jpg"))
		})
	}
}

type mockAPIError struct {
	code string
}

func (e *mockAPIError) ErrorCode() string             { return e.code }
func (e *mockAPIError) ErrorMessage() string          { return e.code }
func (e *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultUnknown }
func (e *mockAPIError) Error() string                 { return fmt.Sprintf("api error %s", e.code) }

func TestWrapS3Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		fallback error
		want     error
	}{
		{"no such key", &mockAPIError{code: "NoSuchKey"}, ErrUploadFailed, ErrNotFound},
		{"not found", &mockAPIError{code: "NotFound"}, ErrUploadFailed, ErrNotFound},
		{"access denied", &mockAPIError{code: "AccessDenied"}, ErrUploadFailed, ErrAccessDenied},
		{"forbidden", &mockAPIError{code: "Forbidden"}, ErrUploadFailed, ErrAccessDenied},
		{"typed no such key", &types.NoSuchKey{}, ErrUploadFailed, ErrNotFound},
		{"plain error", errors.New("boom"), ErrDeleteFailed, ErrDeleteFailed},
		{"unknown code", &mockAPIError{code: "SlowDown"}, ErrPresignFailed, ErrPresignFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, wrapS3Error(tt.err, tt.fallback), tt.want)
		})
	}
}
