package codec

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/ironsheep/rasterkit/internal/raster"
)

// jpegQuality is the quality used when encoding JPEG payloads.
const jpegQuality = 95

func init() {
	Register(FormatPNG, pngCodec{}, []string{"\x89PNG\r\n\x1a\n"}, "png")
	Register(FormatJPEG, jpegCodec{}, []string{"\xff\xd8\xff"}, "jpg", "jpeg")
	Register(FormatGIF, gifCodec{}, []string{"GIF87a", "GIF89a"}, "gif")
	Register(FormatBMP, bmpCodec{}, []string{"BM"}, "bmp")
	Register(FormatTIFF, tiffCodec{}, []string{"II\x2A\x00", "MM\x00\x2A"}, "tif", "tiff")
	Register(FormatWebP, webpCodec{}, []string{"RIFF????WEBP"}, "webp")
}

func decodeWith(r io.Reader, decode func(io.Reader) (image.Image, error)) (*raster.Image, error) {
	img, err := decode(r)
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img), nil
}

type pngCodec struct{}

func (pngCodec) Encode(w io.Writer, im *raster.Image) error {
	return png.Encode(w, im.ToImage())
}

func (pngCodec) Decode(r io.Reader) (*raster.Image, error) {
	return decodeWith(r, png.Decode)
}

type jpegCodec struct{}

func (jpegCodec) Encode(w io.Writer, im *raster.Image) error {
	return jpeg.Encode(w, im.ToImage(), &jpeg.Options{Quality: jpegQuality})
}

func (jpegCodec) Decode(r io.Reader) (*raster.Image, error) {
	return decodeWith(r, jpeg.Decode)
}

type gifCodec struct{}

func (gifCodec) Encode(w io.Writer, im *raster.Image) error {
	return gif.Encode(w, im.ToImage(), nil)
}

func (gifCodec) Decode(r io.Reader) (*raster.Image, error) {
	return decodeWith(r, gif.Decode)
}

type bmpCodec struct{}

func (bmpCodec) Encode(w io.Writer, im *raster.Image) error {
	return bmp.Encode(w, im.ToImage())
}

func (bmpCodec) Decode(r io.Reader) (*raster.Image, error) {
	return decodeWith(r, bmp.Decode)
}

type tiffCodec struct{}

func (tiffCodec) Encode(w io.Writer, im *raster.Image) error {
	return tiff.Encode(w, im.ToImage(), nil)
}

func (tiffCodec) Decode(r io.Reader) (*raster.Image, error) {
	return decodeWith(r, tiff.Decode)
}

// webpCodec is decode-only: x/image ships no webp encoder.
type webpCodec struct{}

func (webpCodec) Encode(io.Writer, *raster.Image) error {
	return &UnsupportedFormatError{Name: "webp (encoding)"}
}

func (webpCodec) Decode(r io.Reader) (*raster.Image, error) {
	return decodeWith(r, webp.Decode)
}
