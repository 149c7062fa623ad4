package binder

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/forms/pkg/upload"
)

// DefaultMaxMemory is the multipart memory limit before parts spill to disk.
const DefaultMaxMemory = 32 << 20

// Input is the transport snapshot a form binds to.
type Input struct {
	// Values maps field names to a string or a []string.
	Values map[string]any
	// Files maps field names to spooled uploads.
	Files map[string]upload.File
}

// Cleanup removes every spooled upload of the Input. Errors are joined.
func (in Input) Cleanup() error {
	var errs []error
	for _, f := range in.Files {
		if err := f.Remove(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Has reports whether name is present in Values or Files.
func (in Input) Has(name string) bool {
	if _, ok := in.Values[name]; ok {
		return true
	}
	_, ok := in.Files[name]
	return ok
}

// Config controls how a request is read.
type Config struct {
	// Method is "get" (query string) or "post" (request body).
	Method string
	// Multipart enables reading uploaded files.
	Multipart bool
	// MaxMemory bounds multipart parsing. Zero means DefaultMaxMemory.
	MaxMemory int64
	// UploadDir is where uploads are spooled. Empty means os.TempDir.
	UploadDir string
	// FileFields limits spooling to these field names. Nil spools every
	// file part; an empty non-nil slice spools none.
	FileFields []string
}

func (c Config) wantsFile(name string) bool {
	if c.FileFields == nil {
		return true
	}
	return slices.Contains(c.FileFields, name)
}

// Bind reads the request into an Input. GET forms read the query string;
// POST forms read only the body. Names ending in "[]" are stripped of the
// suffix and always yield a []string.
//
// A request whose method does not match the form's is not an error; it
// yields an empty Input so the form stays unbound.
func Bind(r *http.Request, cfg Config) (Input, error) {
	in := Input{Values: map[string]any{}, Files: map[string]upload.File{}}

	method := strings.ToLower(cfg.Method)
	if method == "" {
		method = "post"
	}

	if method == "get" {
		in.Values = Values(r.URL.Query())
		return in, nil
	}

	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		return in, nil
	}

	if cfg.Multipart && isMultipart(r) {
		maxMemory := cfg.MaxMemory
		if maxMemory <= 0 {
			maxMemory = DefaultMaxMemory
		}
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return in, wrapParseError(err)
		}
		in.Values = Values(r.PostForm)
		for key, headers := range r.MultipartForm.File {
			name := fieldName(key)
			if len(headers) == 0 || !cfg.wantsFile(name) {
				continue
			}
			// Spool failures are carried by the File's error code.
			f, _ := upload.FromMultipart(headers[0], cfg.UploadDir)
			in.Files[name] = f
		}
		// The spooled copies are owned by the Input; drop net/http's own temp files.
		_ = r.MultipartForm.RemoveAll()
		return in, nil
	}

	if err := r.ParseForm(); err != nil {
		return in, wrapParseError(err)
	}
	in.Values = Values(r.PostForm)
	return in, nil
}

// Values converts url.Values into form values.
func Values(v url.Values) map[string]any {
	out := make(map[string]any, len(v))
	for key, vals := range v {
		name, list := strings.CutSuffix(key, "[]")
		switch {
		case list:
			out[name] = append([]string(nil), vals...)
		case len(vals) == 1:
			out[name] = vals[0]
		case len(vals) > 1:
			out[name] = append([]string(nil), vals...)
		default:
			out[name] = ""
		}
	}
	return out
}

func fieldName(key string) string {
	return strings.TrimSuffix(key, "[]")
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "multipart/form-data")
}

func wrapParseError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: %v", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %v", ErrParseRequest, err)
}
