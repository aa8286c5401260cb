package codec

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/glitchfx/pixsort"
)

// Filter selects the interpolation used by Scale and Fit.
type Filter uint8

const (
	// FilterNearest selects the closest pixel (no interpolation).
	// Fast but blocky.
	FilterNearest Filter = iota

	// FilterBilinear interpolates linearly between neighboring pixels.
	// Good balance between quality and performance.
	FilterBilinear

	// FilterCatmullRom uses a Catmull-Rom cubic kernel.
	// Highest quality, slowest.
	FilterCatmullRom
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	case FilterCatmullRom:
		return "CatmullRom"
	default:
		return "Unknown"
	}
}

func (f Filter) scaler() draw.Scaler {
	switch f {
	case FilterNearest:
		return draw.NearestNeighbor
	case FilterCatmullRom:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// Scale resamples the pixmap to the given dimensions.
func Scale(pm *pixsort.Pixmap, width, height int, filter Filter) (*pixsort.Pixmap, error) {
	if pm == nil || pm.Width() <= 0 || pm.Height() <= 0 {
		return nil, ErrEmptyImage
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("codec: invalid scale target %dx%d", width, height)
	}
	if width == pm.Width() && height == pm.Height() {
		return pm.Clone(), nil
	}

	src := pm.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	filter.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return pixsort.FromImage(dst), nil
}

// Fit downscales the pixmap so that neither dimension exceeds maxDim,
// preserving aspect ratio. Images already within the limit are returned
// as a clone. Fit never upscales.
func Fit(pm *pixsort.Pixmap, maxDim int, filter Filter) (*pixsort.Pixmap, error) {
	if pm == nil || pm.Width() <= 0 || pm.Height() <= 0 {
		return nil, ErrEmptyImage
	}
	if maxDim <= 0 {
		return nil, fmt.Errorf("codec: invalid max dimension %d", maxDim)
	}

	w, h := pm.Width(), pm.Height()
	if w <= maxDim && h <= maxDim {
		return pm.Clone(), nil
	}

	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Scale(pm, w, h, filter)
}
