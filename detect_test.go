package keycolor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func TestDetectCountsMatches(t *testing.T) {
	src := nrgbaRow(t, keyBlue, darkGray, color.NRGBA{R: 3, G: 169, B: 244, A: 40}, opaqueBlack)

	info, err := Detect(src, DefaultKey())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	want := Info{Width: 4, Height: 1, Pixels: 4, Matched: 2, HasAlpha: true}
	if info != want {
		t.Fatalf("info = %+v, want %+v", info, want)
	}
	if diff := math.Abs(info.Coverage() - 0.5); diff > 1e-9 {
		t.Fatalf("coverage = %f, want 0.5", info.Coverage())
	}
}

func TestDetectAgreesWithRecolor(t *testing.T) {
	src := nrgbaRow(t, keyBlue, darkGray, keyBlue, keyBlue, opaqueBlack)
	key := Key{Target: DefaultTarget, Mode: KeepTarget}

	info, err := Detect(src, key)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	out, err := NewRecolorer(key).Recolor(src)
	if err != nil {
		t.Fatalf("Recolor: %v", err)
	}

	kept := 0
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 {
			kept++
		}
	}
	if kept != info.Matched {
		t.Fatalf("Recolor kept %d pixels, Detect matched %d", kept, info.Matched)
	}
}

func TestDetectHasAlpha(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
		want bool
	}{
		{name: "gray", img: image.NewGray(image.Rect(0, 0, 1, 1)), want: false},
		{name: "ycbcr", img: image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444), want: false},
		{name: "nrgba", img: image.NewNRGBA(image.Rect(0, 0, 1, 1)), want: true},
		{name: "rgba", img: image.NewRGBA(image.Rect(0, 0, 1, 1)), want: true},
		{name: "opaque palette", img: image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{keyBlue}), want: false},
		{name: "translucent palette", img: image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{keyBlue, transparent}), want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			info, err := Detect(tc.img, DefaultKey())
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if info.HasAlpha != tc.want {
				t.Fatalf("HasAlpha = %v, want %v", info.HasAlpha, tc.want)
			}
		})
	}
}

// Ensure byte-slice detection aligns with image-based detection.
func TestDetectBytesMatchesImageDetection(t *testing.T) {
	src := nrgbaRow(t, keyBlue, darkGray, keyBlue)

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	infoBytes, err := DetectBytes(buf.Bytes(), DefaultKey())
	if err != nil {
		t.Fatalf("DetectBytes: %v", err)
	}
	infoImg, err := Detect(src, DefaultKey())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if infoBytes != infoImg {
		t.Fatalf("info mismatch: bytes %+v image %+v", infoBytes, infoImg)
	}

	if _, err := DetectBytes(nil, DefaultKey()); err == nil {
		t.Fatalf("expected error for empty data")
	}
}
