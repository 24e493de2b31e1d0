package keycolor

import "bytes"

// RecolorBytes decodes raw image bytes, applies key and encodes the result in
// the named format. Failures are reported as *DecodeError or *EncodeError.
func RecolorBytes(data []byte, format string, key Key) ([]byte, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	out, err := NewRecolorer(key).Recolor(img)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, out, format); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}
