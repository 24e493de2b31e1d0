package keycolor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"
)

// DefaultTarget is the key color used when none is configured.
var DefaultTarget = color.NRGBA{R: 3, G: 169, B: 244, A: 0xff}

// Key describes which pixels match and what happens to them.
type Key struct {
	// Target is the color to match. Its alpha is ignored.
	Target color.NRGBA
	// Tolerance is the largest per-channel difference that still matches.
	Tolerance uint8
	Mode      Mode
}

// DefaultKey keeps exact DefaultTarget pixels and clears everything else.
func DefaultKey() Key {
	return Key{Target: DefaultTarget, Mode: KeepTarget}
}

// Matches reports whether the RGB channels of c are within tolerance of the
// target.
func (k Key) Matches(c color.NRGBA) bool {
	return channelWithin(c.R, k.Target.R, k.Tolerance) &&
		channelWithin(c.G, k.Target.G, k.Tolerance) &&
		channelWithin(c.B, k.Target.B, k.Tolerance)
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s ±%d", k.Mode, FormatColor(k.Target), k.Tolerance)
}

func channelWithin(v, target, tolerance uint8) bool {
	if v > target {
		return v-target <= tolerance
	}
	return target-v <= tolerance
}

// Recolorer applies a fixed Key. It holds no mutable state and is safe for
// concurrent use.
type Recolorer struct {
	key Key
}

// NewRecolorer constructs a Recolorer for key.
func NewRecolorer(key Key) *Recolorer {
	return &Recolorer{key: key}
}

// Key returns the key the Recolorer applies.
func (r *Recolorer) Key() Key {
	return r.key
}

var defaultRecolorer struct {
	once sync.Once
	r    *Recolorer
}

// Recolor applies the default key to the provided image.
func Recolor(img image.Image) (*image.NRGBA, error) {
	defaultRecolorer.once.Do(func() {
		defaultRecolorer.r = NewRecolorer(DefaultKey())
	})

	return defaultRecolorer.r.Recolor(img)
}

// Recolor normalizes img into a non-premultiplied NRGBA buffer and rewrites
// every pixel according to the key. Sources without an alpha channel come out
// of the conversion fully opaque. The result is returned as a new
// *image.NRGBA with the same bounds as img; img itself is never modified.
func (r *Recolorer) Recolor(img image.Image) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	nrgba := cloneToNRGBA(img)
	applyKey(nrgba, r.key)

	return nrgba, nil
}

// cloneToNRGBA copies the image into a mutable NRGBA buffer. draw.Draw goes
// through premultiplied color, which is only lossless for opaque sources, so
// translucent sources are converted pixel by pixel instead.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)

	switch s := src.(type) {
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(bounds.Min.X, y):], s.Pix[s.PixOffset(bounds.Min.X, y):s.PixOffset(bounds.Max.X, y)])
		}
		return dst
	case interface{ Opaque() bool }:
		if s.Opaque() {
			draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
			return dst
		}
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
		}
	}
	return dst
}

// applyKey rewrites the buffer in place. Cleared pixels become (0,0,0,0); kept
// pixels are left byte-for-byte untouched.
func applyKey(img *image.NRGBA, key Key) {
	bounds := img.Bounds()
	clearMatches := key.Mode == ClearTarget

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		row := img.Pix[offset : offset+bounds.Dx()*4]

		for i := 0; i < len(row); i += 4 {
			px := color.NRGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			if key.Matches(px) == clearMatches {
				row[i], row[i+1], row[i+2], row[i+3] = 0, 0, 0, 0
			}
		}
	}
}
