// Package codec decodes and encodes images for the pixsort engine.
//
// The sorting engine itself only ever sees in-memory pixmaps; this
// package is the boundary that turns files and streams into pixmaps and
// back. Supported formats:
//   - PNG, JPEG, GIF (standard library)
//   - BMP, TIFF (golang.org/x/image, decode and encode)
//   - WebP (golang.org/x/image, decode only)
//   - PSR, a zstd-compressed raw RGBA frame for batch pipelines
//
// It also provides Scale and Fit, downscaling helpers for oversized
// inputs. Downscaling is purely a performance aid and plays no part in
// the sort algorithm itself.
package codec
