package internal

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/forms/pkg/render"
	"github.com/dmitrymomot/forms/pkg/upload"
	"github.com/dmitrymomot/forms/pkg/validator"
)

type fileKind struct {
	types   []string
	maxSize int64
	sniff   bool
}

func (fileKind) Type() string                  { return "file" }
func (fileKind) Widget() string                { return render.WidgetFile }
func (fileKind) Multi() bool                   { return false }
func (fileKind) Attributes() map[string]string { return nil }
func (k fileKind) Accept() []string            { return k.types }

func (k fileKind) withSniffing() Kind {
	k.sniff = true
	return k
}

// Prepare extracts the upload descriptor. Anything that is not a
// descriptor becomes the zero descriptor, which counts as not sent.
func (fileKind) Prepare(raw any) any {
	switch v := raw.(type) {
	case upload.File:
		return v
	case *upload.File:
		if v != nil {
			return *v
		}
	}
	return upload.File{}
}

func (fileKind) Empty(v any) bool {
	f, ok := v.(upload.File)
	return !ok || f.IsEmpty()
}

// Validate reports the transport status first, then the media type, then
// the size.
func (k fileKind) Validate(v any) *validator.Fault {
	f, _ := v.(upload.File)
	if fault := f.Error.Fault(); fault != nil {
		return fault
	}
	mediaType := f.Type
	if k.sniff {
		mediaType = upload.DetectType(f)
	}
	if len(k.types) > 0 && !upload.MatchType(mediaType, k.types) {
		return validator.NewFault(upload.KeyBadType, upload.NormalizeType(mediaType))
	}
	if k.maxSize > 0 && f.Size > k.maxSize {
		return validator.NewFault(upload.KeySizeLimit, k.maxSize)
	}
	return nil
}

// Import returns the descriptor, or nil when nothing was sent.
func (k fileKind) Import(v any) any {
	if k.Empty(v) {
		return nil
	}
	return v.(upload.File)
}

type imageKind struct{ fileKind }

func newImageKind(types []string, maxSize int64) imageKind {
	all := slices.Clone(types)
	for _, t := range upload.ImageTypes {
		if !slices.ContainsFunc(all, func(s string) bool { return strings.EqualFold(s, t) }) {
			all = append(all, t)
		}
	}
	return imageKind{fileKind{types: all, maxSize: maxSize}}
}

func (imageKind) Type() string { return "image" }

func (k imageKind) withSniffing() Kind {
	k.sniff = true
	return k
}

func (k imageKind) Validate(v any) *validator.Fault {
	if fault := k.fileKind.Validate(v); fault != nil {
		return fault
	}
	if _, err := upload.DecodeImage(v.(upload.File)); err != nil {
		return validator.NewFault(upload.KeyBadImage)
	}
	return nil
}

// Import returns the decoded *upload.Image, or nil when nothing was sent.
func (k imageKind) Import(v any) any {
	if k.Empty(v) {
		return nil
	}
	img, err := upload.DecodeImage(v.(upload.File))
	if err != nil {
		return nil
	}
	return img
}
