package decks

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Slide geometry in EMU, 16:9 widescreen.
const (
	emuPerInch  = 914400
	emuPerPixel = 9525 // 96 dpi

	slideWidthEMU  = int64(10.0 * emuPerInch)
	slideHeightEMU = int64(5.625 * emuPerInch)
)

// slideImage is one picture ready for placement, already encoded.
type slideImage struct {
	data     []byte
	mimeType string
	widthPx  int
	heightPx int
}

// assemble builds a presentation with one picture per slide, in order.
// With fullBleed the picture covers the whole slide box; otherwise it is
// placed at the origin at its native pixel size.
func assemble(title string, imgs []slideImage, fullBleed bool) ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = title
	p.GetDocumentProperties().Creator = "RN PPT Generator"

	for i, img := range imgs {
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}

		shape := slide.CreateDrawingShape()
		shape.SetImageData(img.data, img.mimeType)
		shape.SetOffsetX(0).SetOffsetY(0)
		if fullBleed {
			shape.SetWidth(slideWidthEMU).SetHeight(slideHeightEMU)
		} else {
			shape.SetWidth(int64(img.widthPx) * emuPerPixel).SetHeight(int64(img.heightPx) * emuPerPixel)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return buf.Bytes(), nil
}
