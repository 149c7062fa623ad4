package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"

	"github.com/google/uuid"
)

// FromMultipart spools a multipart part into dir under a random name and
// returns its descriptor. An empty dir uses os.TempDir.
//
// Spool failures are reported both as an error and as a CantWrite or
// NoTmpDir code on the returned File, so a form can still surface them as
// validation errors.
func FromMultipart(fh *multipart.FileHeader, dir string) (File, error) {
	if fh == nil {
		return File{Error: NoFile}, ErrNilMultipart
	}

	f := File{
		Name: fh.Filename,
		Type: NormalizeType(fh.Header.Get("Content-Type")),
		Size: fh.Size,
	}

	if fh.Filename == "" && fh.Size == 0 {
		f.Error = NoFile
		return f, nil
	}

	if dir == "" {
		dir = os.TempDir()
	}
	if _, err := os.Stat(dir); err != nil {
		f.Error = NoTmpDir
		return f, fmt.Errorf("%w: %v", ErrSpoolFailed, err)
	}

	src, err := fh.Open()
	if err != nil {
		f.Error = Partial
		return f, fmt.Errorf("%w: %v", ErrSpoolFailed, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(dir, "upload-"+uuid.NewString()+"-*"+f.Ext())
	if err != nil {
		f.Error = CantWrite
		return f, fmt.Errorf("%w: %v", ErrSpoolFailed, err)
	}

	n, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(dst.Name())
		f.Error = CantWrite
		return f, fmt.Errorf("%w: %v", ErrSpoolFailed, err)
	}

	f.TmpPath = dst.Name()
	f.Size = n
	return f, nil
}
