package pixsort

import (
	"fmt"
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored row-major as non-premultiplied RGBA, 4 bytes each,
// so the record for (x, y) starts at (y*width+x)*4.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// Both dimensions must be at least 1.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// RGBA returns the color of a single pixel.
// Out-of-bounds coordinates return zeros.
func (p *Pixmap) RGBA(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]
}

// SetRGBA sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// validate reports whether the pixmap is usable as a sort input.
// It runs before any pixel is touched.
func (p *Pixmap) validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil pixmap", ErrInvalidDimensions)
	}
	if p.width <= 0 || p.height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.width, p.height)
	}
	if want := p.width * p.height * 4; len(p.data) != want {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrBufferSize, len(p.data), want)
	}
	return nil
}

// FromImage copies a standard library image into a new Pixmap.
// *image.NRGBA sources are copied directly; everything else goes through
// a generic per-pixel conversion to non-premultiplied RGBA.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return &Pixmap{width: width, height: height}
	}

	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}

	// Fast path for NRGBA images (already non-premultiplied RGBA)
	if nrgba, ok := img.(*image.NRGBA); ok {
		if nrgba.Stride == width*4 && bounds == nrgba.Rect {
			copy(p.data, nrgba.Pix)
			return p
		}
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(p.data[y*width*4:(y+1)*width*4], nrgba.Pix[srcStart:srcStart+width*4])
		}
		return p
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 4
			p.data[i] = c.R
			p.data[i+1] = c.G
			p.data[i+2] = c.B
			p.data[i+3] = c.A
		}
	}
	return p
}

// ToImage converts the pixmap to a standard library *image.NRGBA.
// The returned image owns its own pixel storage.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	if img.Stride == p.width*4 {
		copy(img.Pix, p.data)
		return img
	}
	for y := range p.height {
		copy(img.Pix[y*img.Stride:], p.data[y*p.width*4:(y+1)*p.width*4])
	}
	return img
}
