package keycolor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

const jpegQuality = 95

// ErrUnsupportedFormat is returned when no encoder exists for a format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrNotRepresentable is returned when a format cannot store the pixels of an
// image without changing them.
var ErrNotRepresentable = errors.New("image not representable in output format")

// maxGIFColors leaves palette index 0 for the transparent entry.
const maxGIFColors = 255

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	"png":  png.Encode,
	"jpeg": encodeJPEG,
	"gif":  encodeGIF,
	"tiff": encodeTIFF,
}

var extFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".tif":  "tiff",
	".tiff": "tiff",
}

// FormatFromPath maps the extension of path to an encoder format name.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extFormats[ext]
	if !ok {
		if ext == "" {
			return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return format, nil
}

// Encode writes img to w in the named format ("png", "jpeg", "jpg", "gif",
// "tiff", "tif"). BMP and WebP are decode-only.
func Encode(w io.Writer, img image.Image, format string) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch format {
	case "jpg":
		format = "jpeg"
	case "tif":
		format = "tiff"
	}

	enc, ok := encoders[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return enc(w, img)
}

// EncodePNG writes the provided image to the writer as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}

// encodeGIF writes an exact palette instead of letting image/gif quantize.
// Index 0 is fully transparent; every other pixel must be opaque.
func encodeGIF(w io.Writer, img image.Image) error {
	pm, err := exactPaletted(img)
	if err != nil {
		return err
	}
	return gif.Encode(w, pm, nil)
}

func exactPaletted(img image.Image) (*image.Paletted, error) {
	bounds := img.Bounds()
	palette := color.Palette{color.NRGBA{}}
	index := map[color.NRGBA]uint8{}
	pm := image.NewPaletted(bounds, nil)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			switch {
			case c == (color.NRGBA{}):
				continue
			case c.A != 0xff:
				return nil, fmt.Errorf("%w: gif: pixel (%d,%d) has alpha %d", ErrNotRepresentable, x, y, c.A)
			}

			i, ok := index[c]
			if !ok {
				if len(palette) > maxGIFColors {
					return nil, fmt.Errorf("%w: gif: more than %d colors", ErrNotRepresentable, maxGIFColors)
				}
				i = uint8(len(palette))
				index[c] = i
				palette = append(palette, c)
			}
			pm.SetColorIndex(x, y, i)
		}
	}

	pm.Palette = palette
	return pm, nil
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}
