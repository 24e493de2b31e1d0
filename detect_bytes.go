package keycolor

// DetectBytes checks raw image bytes against key without producing any output.
// It decodes the bytes into an image and delegates to Detect.
func DetectBytes(data []byte, key Key) (Info, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return Info{}, &DecodeError{Err: err}
	}

	return Detect(img, key)
}
