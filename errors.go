package pixsort

import "errors"

// Errors reported by Sort. Dimension and buffer-size problems are
// detected before any pixel is touched.
var (
	// ErrInvalidDimensions is returned when a pixmap has a non-positive
	// width or height, or is nil.
	ErrInvalidDimensions = errors.New("pixsort: invalid dimensions")

	// ErrBufferSize is returned when a pixmap's data length does not
	// match width*height*4.
	ErrBufferSize = errors.New("pixsort: buffer size mismatch")

	// ErrCanceled is returned when the context supplied via WithContext
	// is canceled mid-sort. No partial result is ever returned.
	ErrCanceled = errors.New("pixsort: sort canceled")
)
