package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/glitchfx/pixsort"
)

// PSR is a minimal lossless frame format for pipelines that sort the
// same material repeatedly (parameter sweeps, batch runs): decoding a
// PSR frame skips all color-model conversion and entropy decoding that
// PNG or JPEG would cost per iteration.
//
// Layout: magic "PSR1", width and height as big-endian uint32, then the
// raw RGBA bytes (width*height*4) in a single zstd stream.

const psrMagic = "PSR1"

// maxPSRPixels caps accepted frame sizes so a corrupt header cannot
// trigger a huge allocation. 1 GiB of RGBA.
const maxPSRPixels = 1 << 28

// ErrInvalidPSR is returned when a PSR stream is malformed.
var ErrInvalidPSR = errors.New("codec: invalid PSR frame")

// EncodePSR writes the pixmap to w as a PSR frame.
func EncodePSR(w io.Writer, pm *pixsort.Pixmap) error {
	if pm == nil || pm.Width() <= 0 || pm.Height() <= 0 {
		return ErrEmptyImage
	}

	if _, err := io.WriteString(w, psrMagic); err != nil {
		return fmt.Errorf("codec: write PSR header: %w", err)
	}
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(pm.Width()))
	binary.BigEndian.PutUint32(dims[4:8], uint32(pm.Height()))
	if _, err := w.Write(dims[:]); err != nil {
		return fmt.Errorf("codec: write PSR header: %w", err)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("codec: zstd writer: %w", err)
	}
	if _, err := zw.Write(pm.Data()); err != nil {
		_ = zw.Close()
		return fmt.Errorf("codec: write PSR pixels: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("codec: flush PSR frame: %w", err)
	}
	return nil
}

// DecodePSR reads one PSR frame from r.
func DecodePSR(r io.Reader) (*pixsort.Pixmap, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: short header: %w", ErrInvalidPSR, err)
	}
	if string(header[:4]) != psrMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidPSR, header[:4])
	}

	width := int(binary.BigEndian.Uint32(header[4:8]))
	height := int(binary.BigEndian.Uint32(header[8:12]))
	if width <= 0 || height <= 0 || width*height > maxPSRPixels {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidPSR, width, height)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd reader: %w", ErrInvalidPSR, err)
	}
	defer zr.Close()

	pm, err := pixsort.NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(zr, pm.Data()); err != nil {
		return nil, fmt.Errorf("%w: short pixel data: %w", ErrInvalidPSR, err)
	}
	return pm, nil
}
