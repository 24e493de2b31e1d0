package keycolor

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	keyBlue     = color.NRGBA{R: 3, G: 169, B: 244, A: 255}
	darkGray    = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	opaqueBlack = color.NRGBA{A: 255}
	transparent = color.NRGBA{}
)

// nrgbaRow builds a width x 1 NRGBA image from the given pixels.
func nrgbaRow(t *testing.T, pixels ...color.NRGBA) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, len(pixels), 1))
	for x, c := range pixels {
		img.SetNRGBA(x, 0, c)
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readImage(t *testing.T, path string) image.Image {
	t.Helper()
	img, _, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return img
}

func assertPixels(t *testing.T, img image.Image, want ...color.NRGBA) {
	t.Helper()
	got := imageToNRGBA(img)
	if n := got.Rect.Dx() * got.Rect.Dy(); n != len(want) {
		t.Fatalf("pixel count = %d, want %d", n, len(want))
	}
	b := got.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := got.NRGBAAt(x, y); c != want[i] {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, c, want[i])
			}
			i++
		}
	}
}

func imageToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	return out
}
