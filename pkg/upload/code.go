package upload

import (
	"strconv"

	"github.com/dmitrymomot/forms/pkg/validator"
)

// ErrorCode is the transport status of an uploaded file. The numbering is
// stable and 5 is unused.
type ErrorCode int

const (
	OK        ErrorCode = 0
	IniSize   ErrorCode = 1
	FormSize  ErrorCode = 2
	Partial   ErrorCode = 3
	NoFile    ErrorCode = 4
	NoTmpDir  ErrorCode = 6
	CantWrite ErrorCode = 7
	Extension ErrorCode = 8
)

// Message keys for upload faults.
const (
	KeyTooLarge    = "field_file_toolarge"
	KeyUploadError = "field_file_uploaderror"
	KeyNotSent     = "field_file_notsent"
	KeySysError    = "field_file_syserror"
	KeyBadType     = "field_file_badtype"
	KeySizeLimit   = "field_file_sizelimit"
	KeyBadImage    = "field_file_badimage"
)

// Fault maps a transport code to a validation fault. OK and unknown codes
// map to nil.
func (c ErrorCode) Fault() *validator.Fault {
	switch c {
	case IniSize, FormSize:
		return validator.NewFault(KeyTooLarge)
	case Partial:
		return validator.NewFault(KeyUploadError)
	case NoFile:
		return validator.NewFault(KeyNotSent)
	case NoTmpDir, CantWrite, Extension:
		return validator.NewFault(KeySysError, int(c))
	default:
		return nil
	}
}

func (c ErrorCode) String() string {
	switch c {
	case OK:
		return "ok"
	case IniSize:
		return "ini_size"
	case FormSize:
		return "form_size"
	case Partial:
		return "partial"
	case NoFile:
		return "no_file"
	case NoTmpDir:
		return "no_tmp_dir"
	case CantWrite:
		return "cant_write"
	case Extension:
		return "extension"
	default:
		return "code_" + strconv.Itoa(int(c))
	}
}
