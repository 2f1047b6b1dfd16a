// Package thumbnail resizes uploaded images.
package thumbnail

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // registers the webp decoder
)

const jpegQuality = 85

type resizer struct{}

// New returns a Thumbnailer that keeps the aspect ratio and re-encodes in the source format.
// WebP sources are re-encoded as PNG since no WebP encoder is available.
func New() service.Thumbnailer {
	return resizer{}
}

// Resize scales src to the given width. Images already narrower than width are scaled up
// so every generated variant has exactly the requested width.
func (resizer) Resize(src []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, errors.Errorf("invalid thumbnail width %d", width)
	}

	img, format, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, errors.New("image has no pixels")
	}

	height := max(1, bounds.Dy()*width/bounds.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(&buf, dst, nil)
	case "bmp":
		err = bmp.Encode(&buf, dst)
	default:
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s thumbnail", format)
	}

	return buf.Bytes(), nil
}
