package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/rasterkit/internal/raster"
)

// Format names a container format, e.g. "png".
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

// Codec is the capability contract for one container format. Implementations
// are pure from the engine's point of view: they translate between bytes and
// an Image and report failures as errors.
type Codec interface {
	Encode(w io.Writer, im *raster.Image) error
	Decode(r io.Reader) (*raster.Image, error)
}

// UnsupportedFormatError reports an unrecognized format name, file extension
// or byte signature.
type UnsupportedFormatError struct {
	Name string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Name == "" {
		return "unrecognized image signature"
	}
	return fmt.Sprintf("unsupported image format %q", e.Name)
}

// CodecError reports a payload the selected codec rejected.
type CodecError struct {
	Format Format
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s codec: %v", e.Format, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

type registration struct {
	format Format
	codec  Codec
	// magic signatures; '?' matches any byte
	magics []string
	exts   []string
}

var registry []registration

// Register adds a codec under the given format name. magics are byte
// signatures used by Infer ('?' matches any byte); exts are file extensions
// (without the dot) used by FormatFromExtension. Registering an existing
// format replaces it.
func Register(format Format, c Codec, magics []string, exts ...string) {
	for i := range registry {
		if registry[i].format == format {
			registry[i] = registration{format, c, magics, exts}
			return
		}
	}
	registry = append(registry, registration{format, c, magics, exts})
}

func lookup(format Format) (Codec, error) {
	for _, r := range registry {
		if r.format == format {
			return r.codec, nil
		}
	}
	return nil, &UnsupportedFormatError{Name: string(format)}
}

func matchMagic(magic string, data []byte) bool {
	if len(data) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if magic[i] != '?' && magic[i] != data[i] {
			return false
		}
	}
	return true
}

// Infer identifies the format of a byte payload by its signature.
func Infer(data []byte) (Format, error) {
	for _, r := range registry {
		for _, magic := range r.magics {
			if matchMagic(magic, data) {
				return r.format, nil
			}
		}
	}
	return "", &UnsupportedFormatError{}
}

// FormatFromExtension maps a file extension (with or without the leading
// dot) to a registered format.
func FormatFromExtension(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, r := range registry {
		for _, e := range r.exts {
			if e == ext {
				return r.format, nil
			}
		}
	}
	return "", &UnsupportedFormatError{Name: ext}
}

// Decode decodes a payload with the explicitly selected format's codec.
// The decoded image carries the format as its tag.
func Decode(data []byte, format Format) (*raster.Image, error) {
	c, err := lookup(format)
	if err != nil {
		return nil, err
	}
	im, err := c.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &CodecError{Format: format, Err: err}
	}
	im.SetFormat(string(format))
	return im, nil
}

// DecodeInferred identifies the payload's format by signature, then decodes
// it.
func DecodeInferred(data []byte) (*raster.Image, error) {
	format, err := Infer(data)
	if err != nil {
		return nil, err
	}
	return Decode(data, format)
}

// Encode serializes the image with the selected format's codec.
func Encode(im *raster.Image, format Format) ([]byte, error) {
	c, err := lookup(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, im); err != nil {
		return nil, &CodecError{Format: format, Err: err}
	}
	return buf.Bytes(), nil
}

// Open reads and decodes an image file, inferring the format from its
// contents.
func Open(path string) (*raster.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return DecodeInferred(data)
}

// Save encodes the image to a file. An empty format infers the format from
// the path's extension; unknown extensions report UnsupportedFormatError.
// On success the image's format tag is updated.
func Save(im *raster.Image, path string, format Format) error {
	if format == "" {
		var err error
		if format, err = FormatFromExtension(filepath.Ext(path)); err != nil {
			return err
		}
	}

	data, err := Encode(im, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	im.SetFormat(string(format))
	return nil
}
