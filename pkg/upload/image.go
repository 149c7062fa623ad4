package upload

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is an uploaded file whose header decoded as an image.
type Image struct {
	File
	Width  int
	Height int
	// Format is the decoder name: "png", "jpeg", "gif", "bmp", "tiff" or "webp".
	Format string
}

// DecodeImage reads the image header of f. Pixel data is not decoded.
func DecodeImage(f File) (*Image, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	return &Image{
		File:   f,
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}
