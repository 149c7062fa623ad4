package upload

import "errors"

var (
	ErrNoFile       = errors.New("upload: no file was sent")
	ErrEmptyDir     = errors.New("upload: target directory cannot be empty")
	ErrInvalidName  = errors.New("upload: invalid file name")
	ErrNotImage     = errors.New("upload: file is not a decodable image")
	ErrSpoolFailed  = errors.New("upload: failed to spool file")
	ErrMoveFailed   = errors.New("upload: failed to move file")
	ErrNilMultipart = errors.New("upload: multipart file header is nil")
)
