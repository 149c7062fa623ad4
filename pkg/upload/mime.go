package upload

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

// MIME type constants.
const (
	MIMEOctetStream    = "application/octet-stream"
	mimeDetectionBytes = 512 // http.DetectContentType requires up to 512 bytes
)

// ImageTypes are the media types accepted by image upload fields.
var ImageTypes = []string{"image/png", "image/gif", "image/jpg", "image/jpeg"}

// mimeExtensions maps MIME types to preferred file extensions.
var mimeExtensions = map[string]string{
	"image/jpeg":       ".jpg",
	"image/jpg":        ".jpg",
	"image/png":        ".png",
	"image/gif":        ".gif",
	"image/webp":       ".webp",
	"image/svg+xml":    ".svg",
	"image/bmp":        ".bmp",
	"image/tiff":       ".tiff",
	"image/x-icon":     ".ico",
	"application/pdf":  ".pdf",
	"text/plain":       ".txt",
	"text/csv":         ".csv",
	"text/html":        ".html",
	"application/json": ".json",
	"application/xml":  ".xml",
	"application/zip":  ".zip",
	"application/gzip": ".gz",
	"video/mp4":        ".mp4",
	"audio/mpeg":       ".mp3",

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       ".xlsx",
}

// DetectType sniffs the media type of the spooled content from its magic
// bytes. Returns "application/octet-stream" if detection fails.
func DetectType(f File) string {
	r, err := f.Open()
	if err != nil {
		return MIMEOctetStream
	}
	defer r.Close()

	return DetectReader(r)
}

// DetectReader sniffs the media type from the first bytes of r.
func DetectReader(r io.Reader) string {
	buf := make([]byte, mimeDetectionBytes)
	n, err := io.ReadFull(r, buf)
	if n == 0 && err != nil {
		return MIMEOctetStream
	}
	return NormalizeType(http.DetectContentType(buf[:n]))
}

// DetectSeekable sniffs the media type of r and returns a reader positioned
// at the start. Seekable inputs are rewound; others are buffered in memory.
func DetectSeekable(r io.Reader) (string, io.ReadSeeker) {
	if rs, ok := r.(io.ReadSeeker); ok {
		mimeType := DetectReader(rs)
		_, _ = rs.Seek(0, io.SeekStart)
		return mimeType, rs
	}

	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return MIMEOctetStream, bytes.NewReader(nil)
	}
	return NormalizeType(http.DetectContentType(data)), bytes.NewReader(data)
}

// ExtFromType returns the file extension for a media type, or "".
func ExtFromType(mimeType string) string {
	return mimeExtensions[NormalizeType(mimeType)]
}

// NormalizeType drops parameters like charset and lowercases the type.
func NormalizeType(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(strings.ToLower(mimeType))
}

// MatchType reports whether mimeType is in allowed. Patterns may use a
// subtype wildcard like "image/*".
func MatchType(mimeType string, allowed []string) bool {
	mimeType = NormalizeType(mimeType)

	for _, pattern := range allowed {
		pattern = strings.TrimSpace(strings.ToLower(pattern))

		if mimeType == pattern {
			return true
		}

		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok && strings.HasPrefix(mimeType, prefix+"/") {
			return true
		}
	}

	return false
}
