package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File describes one uploaded file after the transport layer spooled it to
// a temporary location.
type File struct {
	// Name is the client-supplied file name.
	Name string
	// Type is the client-supplied media type.
	Type string
	// TmpPath is where the content currently lives.
	TmpPath string
	// Size is the content length in bytes.
	Size int64
	// Error is the transport status.
	Error ErrorCode
}

// IsEmpty reports whether nothing was sent: the descriptor is blank or the
// transport reported NoFile. Any other transport error makes the file
// non-empty so it reaches validation and gets reported.
func (f File) IsEmpty() bool {
	if f.Error == NoFile {
		return true
	}
	return f.Error == OK && f.TmpPath == "" && f.Name == "" && f.Size == 0
}

// Sent reports whether the file arrived without transport errors.
func (f File) Sent() bool {
	return f.Error == OK && f.TmpPath != ""
}

// Ext returns the lowercase extension of the client file name, with dot.
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Open opens the spooled content for reading.
func (f File) Open() (*os.File, error) {
	if !f.Sent() {
		return nil, ErrNoFile
	}
	return os.Open(f.TmpPath)
}

// Remove deletes the spooled content. Removing an already removed file is
// not an error.
func (f File) Remove() error {
	if f.TmpPath == "" {
		return nil
	}
	if err := os.Remove(f.TmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MoveTo moves the content to dir/<client base name> and returns the new
// path. The receiver's TmpPath follows the move.
func (f *File) MoveTo(dir string) (string, error) {
	if !f.Sent() {
		return "", ErrNoFile
	}
	if dir == "" {
		return "", ErrEmptyDir
	}

	name := safeBaseName(f.Name)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, f.Name)
	}

	dst := filepath.Join(dir, name)
	if err := os.Rename(f.TmpPath, dst); err != nil {
		if err := copyFile(f.TmpPath, dst); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMoveFailed, err)
		}
		_ = os.Remove(f.TmpPath)
	}

	f.TmpPath = dst
	return dst, nil
}

// safeBaseName strips any directory part, including Windows separators
// some browsers send.
func safeBaseName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." {
		return ""
	}
	return base
}

// copyFile is the fallback when rename crosses filesystems.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
