// Package images decodes uploaded pictures and normalizes them onto a
// fixed 16:9 canvas for slide placement.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Target canvas for normalized images, a 16:9 frame at 1920x1080.
const (
	TargetWidth  = 1920
	TargetHeight = 1080
)

// ErrImageDecode marks an unreadable or corrupted upload.
var ErrImageDecode = errors.New("image decode failed")

// Decode parses an uploaded image blob.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	return img, nil
}

// Normalize scales img uniformly, up or down, to the largest size that fits
// the target frame and centers it on a black canvas. A source already at 16:9
// is scaled to the exact target size with no padding.
func Normalize(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if b.Dx()*TargetHeight == b.Dy()*TargetWidth {
		return imaging.Resize(img, TargetWidth, TargetHeight, imaging.Lanczos)
	}
	w, h := fitDimensions(b.Dx(), b.Dy())
	scaled := imaging.Resize(img, w, h, imaging.Lanczos)
	canvas := imaging.New(TargetWidth, TargetHeight, color.NRGBA{A: 255})
	return imaging.PasteCenter(canvas, scaled)
}

// fitDimensions returns the largest frame-bounded size preserving the
// source's aspect ratio. One dimension always fills the frame.
func fitDimensions(w, h int) (int, int) {
	if w*TargetHeight >= h*TargetWidth {
		return TargetWidth, h * TargetWidth / w
	}
	return w * TargetHeight / h, TargetHeight
}

// EncodePNG renders a bitmap to PNG bytes for embedding.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
