package codec

import (
	"bufio"
	"errors"
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"image"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/glitchfx/pixsort"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyImage is returned when an encode is attempted on a nil or
	// zero-sized pixmap.
	ErrEmptyImage = errors.New("codec: empty image")
)

// Format identifies an image file format.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
	FormatPSR  Format = "psr"
)

// FormatForPath derives the format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, true
	case ".jpg", ".jpeg":
		return FormatJPEG, true
	case ".gif":
		return FormatGIF, true
	case ".bmp":
		return FormatBMP, true
	case ".tif", ".tiff":
		return FormatTIFF, true
	case ".webp":
		return FormatWebP, true
	case ".psr":
		return FormatPSR, true
	default:
		return "", false
	}
}

// EncodeOptions carries per-format encoder settings.
type EncodeOptions struct {
	// JPEGQuality is the JPEG quality in [1,100]. Zero selects 90.
	JPEGQuality int
}

func (o *EncodeOptions) jpegQuality() int {
	if o == nil || o.JPEGQuality == 0 {
		return 90
	}
	q := o.JPEGQuality
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q
}

// Load reads and decodes an image from the given file path, detecting
// the format from the content.
func Load(path string) (*pixsort.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	pm, _, err := Decode(f)
	return pm, err
}

// Decode decodes an image from the given reader, auto-detecting the
// format. PSR frames are recognized by their magic; everything else is
// handed to the registered image decoders.
func Decode(r io.Reader) (*pixsort.Pixmap, Format, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(psrMagic))
	if err == nil && string(head) == psrMagic {
		pm, derr := DecodePSR(br)
		return pm, FormatPSR, derr
	}

	img, name, err := image.Decode(br)
	if err != nil {
		return nil, "", fmt.Errorf("codec: decode: %w", err)
	}
	return pixsort.FromImage(img), Format(name), nil
}

// Save encodes the pixmap into the file at path, deriving the format
// from the extension.
func Save(path string, pm *pixsort.Pixmap, opts *EncodeOptions) error {
	format, ok := FormatForPath(path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}
	if err := Encode(f, pm, format, opts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the pixmap to w in the given format.
// WebP has no encoder and returns ErrUnsupportedFormat.
func Encode(w io.Writer, pm *pixsort.Pixmap, format Format, opts *EncodeOptions) error {
	if pm == nil || pm.Width() <= 0 || pm.Height() <= 0 {
		return ErrEmptyImage
	}

	switch format {
	case FormatPSR:
		return EncodePSR(w, pm)
	case FormatPNG:
		if err := png.Encode(w, pm.ToImage()); err != nil {
			return fmt.Errorf("codec: encode PNG: %w", err)
		}
	case FormatJPEG:
		if err := jpeg.Encode(w, pm.ToImage(), &jpeg.Options{Quality: opts.jpegQuality()}); err != nil {
			return fmt.Errorf("codec: encode JPEG: %w", err)
		}
	case FormatGIF:
		if err := gif.Encode(w, pm.ToImage(), nil); err != nil {
			return fmt.Errorf("codec: encode GIF: %w", err)
		}
	case FormatBMP:
		if err := bmp.Encode(w, pm.ToImage()); err != nil {
			return fmt.Errorf("codec: encode BMP: %w", err)
		}
	case FormatTIFF:
		if err := tiff.Encode(w, pm.ToImage(), nil); err != nil {
			return fmt.Errorf("codec: encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}
