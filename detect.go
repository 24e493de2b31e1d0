package keycolor

import (
	"fmt"
	"image"
	"image/color"
)

// Info summarizes an image against a key.
type Info struct {
	Width  int
	Height int
	Pixels int
	// Matched counts pixels whose RGB channels match the key.
	Matched int
	// HasAlpha reports whether the source color model can carry translucency.
	HasAlpha bool
}

// Coverage returns the matched fraction of all pixels in [0, 1].
func (i Info) Coverage() float64 {
	if i.Pixels == 0 {
		return 0
	}
	return float64(i.Matched) / float64(i.Pixels)
}

// Detect counts the pixels of img that match key without modifying anything.
// Matching is done on the same NRGBA view that Recolor uses, so Matched is
// exactly the number of pixels Recolor would keep in KeepTarget mode.
func Detect(img image.Image, key Key) (Info, error) {
	if img == nil {
		return Info{}, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return Info{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	info := Info{
		Width:    width,
		Height:   height,
		Pixels:   width * height,
		HasAlpha: hasAlpha(img),
	}

	nrgba := cloneToNRGBA(img)
	for i := 0; i < len(nrgba.Pix); i += 4 {
		px := color.NRGBA{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2]}
		if key.Matches(px) {
			info.Matched++
		}
	}

	return info, nil
}

// hasAlpha inspects the color model of img. Paletted images count only when a
// palette entry is translucent.
func hasAlpha(img image.Image) bool {
	if p, ok := img.(*image.Paletted); ok {
		for _, c := range p.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}

	switch img.ColorModel() {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
