package storage

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/forms/pkg/upload"
)

// buildKey returns {tenant}/{prefix}/{uuid}{ext}.
func buildKey(tenant, prefix, contentType string) string {
	var parts []string
	if tenant != "" {
		parts = append(parts, sanitizePathSegment(tenant))
	}
	if prefix != "" {
		parts = append(parts, sanitizePathSegment(prefix))
	}

	ext := upload.ExtFromType(contentType)
	if ext == "" {
		ext = ".bin"
	}
	return strings.Join(append(parts, uuid.NewString()+ext), "/")
}

var unsafeSegment = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizePathSegment(segment string) string {
	segment = strings.Trim(segment, " /\\")
	segment = strings.ReplaceAll(segment, "..", "")
	segment = unsafeSegment.ReplaceAllString(segment, "_")
	return url.PathEscape(segment)
}

// validKey rejects keys that would escape a storage root.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return false
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}
