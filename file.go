package keycolor

import (
	"bytes"
	"image"
	"os"
)

// RecolorFile decodes inputPath, applies key and writes the result to
// outputPath in the format implied by its extension. The output is fully
// encoded in memory before anything is written, so a failed call never leaves
// a file behind.
func RecolorFile(inputPath, outputPath string, key Key) error {
	img, _, err := LoadImage(inputPath)
	if err != nil {
		return err
	}

	out, err := NewRecolorer(key).Recolor(img)
	if err != nil {
		return &DecodeError{Path: inputPath, Err: err}
	}

	return SaveImage(out, outputPath)
}

// SaveImage encodes img in the format implied by the extension of path and
// writes it in one step. Failures are reported as *EncodeError and leave no
// file behind.
func SaveImage(img image.Image, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// LoadImage opens and decodes the image at path. Failures are reported as
// *DecodeError.
func LoadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	return img, format, nil
}
