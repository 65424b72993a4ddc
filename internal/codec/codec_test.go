package codec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/rasterkit/internal/pixel"
	"github.com/ironsheep/rasterkit/internal/raster"
)

func TestPNGRoundTripRGB(t *testing.T) {
	im := raster.New(3, 2, pixel.FromRGB(255, 0, 0))
	if err := im.SetPixel(1, 1, pixel.FromRGB(0, 255, 0)); err != nil {
		t.Fatal(err)
	}

	data, err := Encode(im, FormatPNG)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	back, err := Decode(data, FormatPNG)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if back.Mode() != pixel.ModeRGB {
		t.Errorf("mode: got %s, want RGB", back.Mode())
	}
	if !back.Equal(im) {
		t.Error("png round trip should be lossless for RGB")
	}
	if back.Format() != "png" {
		t.Errorf("format tag: got %q, want png", back.Format())
	}
}

func TestPNGRoundTripRGBA(t *testing.T) {
	im := raster.New(2, 2, pixel.FromRGBA(10, 20, 30, 128))

	data, err := Encode(im, FormatPNG)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := Decode(data, FormatPNG)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if back.Mode() != pixel.ModeRGBA {
		t.Errorf("mode: got %s, want RGBA", back.Mode())
	}
	if !back.Equal(im) {
		t.Error("png round trip should be lossless for RGBA")
	}
}

func TestPNGRoundTripLuma(t *testing.T) {
	im := raster.New(4, 4, pixel.FromLuma(77))

	data, err := Encode(im, FormatPNG)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := Decode(data, FormatPNG)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if back.Mode() != pixel.ModeLuma {
		t.Errorf("mode: got %s, want L", back.Mode())
	}
	if !back.Equal(im) {
		t.Error("png round trip should be lossless for L")
	}
}

func TestLosslessFormats(t *testing.T) {
	im := raster.New(3, 3, pixel.FromRGB(12, 34, 56))

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(im, format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			back, err := Decode(data, format)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			got, err := back.GetPixel(0, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got.RGB() != (pixel.RGB{R: 12, G: 34, B: 56}) {
				t.Errorf("pixel after round trip: got %s", got)
			}
		})
	}
}

func TestJPEGRoundTripApproximate(t *testing.T) {
	im := raster.New(8, 8, pixel.FromRGB(200, 100, 50))

	data, err := Encode(im, FormatJPEG)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := Decode(data, FormatJPEG)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if w, h := back.Dimensions(); w != 8 || h != 8 {
		t.Fatalf("dimensions: got %dx%d, want 8x8", w, h)
	}

	// jpeg is lossy; just require the color to be in the neighborhood
	got, _ := back.GetPixel(4, 4)
	c := got.RGB()
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(c.R, 200) > 16 || diff(c.G, 100) > 16 || diff(c.B, 50) > 16 {
		t.Errorf("jpeg drifted too far: got %s", got)
	}
}

func TestDecodeInferred(t *testing.T) {
	im := raster.New(2, 2, pixel.FromRGB(1, 2, 3))

	for _, format := range []Format{FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(im, format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			inferred, err := Infer(data)
			if err != nil {
				t.Fatalf("Infer failed: %v", err)
			}
			if inferred != format {
				t.Fatalf("Infer: got %s, want %s", inferred, format)
			}

			back, err := DecodeInferred(data)
			if err != nil {
				t.Fatalf("DecodeInferred failed: %v", err)
			}
			if back.Format() != string(format) {
				t.Errorf("format tag: got %q, want %q", back.Format(), format)
			}
		})
	}
}

func TestInferUnknownSignature(t *testing.T) {
	_, err := Infer([]byte("definitely not an image"))
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("got %v, want UnsupportedFormatError", err)
	}
}

func TestDecodeMalformedPayload(t *testing.T) {
	// valid png signature, garbage body
	data := append([]byte("\x89PNG\r\n\x1a\n"), []byte("garbage")...)

	_, err := Decode(data, FormatPNG)
	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want CodecError", err)
	}
	if ce.Format != FormatPNG {
		t.Errorf("CodecError.Format: got %s", ce.Format)
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode([]byte{}, Format("xpm"))
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("got %v, want UnsupportedFormatError", err)
	}
}

func TestWebPEncodeUnsupported(t *testing.T) {
	_, err := Encode(raster.New(1, 1, pixel.FromRGB(0, 0, 0)), FormatWebP)
	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want CodecError", err)
	}
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Error("CodecError should wrap UnsupportedFormatError for webp encode")
	}
}

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		ext     string
		want    Format
		wantErr bool
	}{
		{".png", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"JPEG", FormatJPEG, false},
		{".tif", FormatTIFF, false},
		{".webp", FormatWebP, false},
		{".xyz", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromExtension(tt.ext)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FormatFromExtension(%q): expected error", tt.ext)
			}
			continue
		}
		if err != nil {
			t.Errorf("FormatFromExtension(%q): %v", tt.ext, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromExtension(%q): got %s, want %s", tt.ext, got, tt.want)
		}
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	im := raster.New(2, 2, pixel.FromRGB(9, 8, 7))
	if err := Save(im, path, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if im.Format() != "png" {
		t.Errorf("format tag after save: got %q, want png", im.Format())
	}

	back, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !back.Equal(im) {
		t.Error("open(save(img)) should reproduce the image")
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	im := raster.New(1, 1, pixel.FromRGB(0, 0, 0))
	err := Save(im, filepath.Join(t.TempDir(), "out.doc"), "")
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("got %v, want UnsupportedFormatError", err)
	}
}

func TestSaveExplicitFormatOverridesExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.dat")

	im := raster.New(2, 2, pixel.FromRGB(1, 2, 3))
	if err := Save(im, path, FormatBMP); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if format, err := Infer(data); err != nil || format != FormatBMP {
		t.Errorf("saved payload: got %s (%v), want bmp", format, err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
