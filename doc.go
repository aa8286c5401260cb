// Package pixsort implements a pixel-sorting glitch filter for raster images.
//
// # Overview
//
// pixsort reorders pixel intensities within contiguous runs along each
// column and then each row of an image, producing the classic "pixel sort"
// glitch-art effect. Run boundaries are found by one of four threshold
// modes (White, Black, Bright, Dark); the pixels inside a run are sorted
// ascending by a packed RGB integer key.
//
// # Quick Start
//
//	import "github.com/glitchfx/pixsort"
//
//	pm := pixsort.FromImage(img)
//	out, err := pixsort.Sort(pm, pixsort.DefaultConfig(pixsort.ModeBright))
//	if err != nil {
//		// ...
//	}
//	result := out.ToImage()
//
// # Algorithm
//
// Sort works on a packed form of the image: every pixel's (R,G,B) is
// combined into a single signed 32-bit integer with the high byte fixed
// at 0xFF. Two passes run over the same working buffer, columns first,
// then rows, so the row pass observes column-sorted data. Within a
// scanline the engine alternates between seeking a run start (a pixel
// crossing the mode's boundary threshold) and extending the run while
// pixels keep satisfying the opposite-direction continuation test; each
// detected run is sorted in place. The asymmetry between the start and
// continuation comparisons is what produces variable-length streaks
// instead of whole-line sorts, and is preserved from the original effect
// on purpose, as are its off-by-ones: the last column and the last row
// of the image are never scanned, and a run never starts on the final
// pixel of a scanline.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pixmap, Config, Sort, packed-color helpers
//   - codec: image decode/encode (PNG, JPEG, GIF, BMP, TIFF, WebP),
//     downscaling, and a zstd-compressed raw frame format
//   - Internal: parallel (scanline worker scheduling)
//
// # Determinism
//
// Sort is a pure function: identical inputs produce byte-identical
// outputs, with or without a progress sink, sequentially or with
// WithWorkers parallelism. Alpha is copied through untouched.
package pixsort

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
