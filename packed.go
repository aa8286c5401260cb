package pixsort

// Packed colors combine (R,G,B) into one signed 32-bit integer with the
// high byte fixed at 0xFF, the layout of a 32-bit ARGB word with full
// alpha. The fixed byte is only an opaque flag for the packing; the real
// alpha channel is carried separately and never enters the sort.
//
// Because the high byte is set, every packed value is negative:
// Pack(0,0,0) is the minimum (-16777216) and Pack(255,255,255) the
// maximum (-1). Threshold comparisons are signed, which is what the
// large negative default thresholds rely on. Sorting ascending by the
// packed value orders primarily by red, then green, then blue.

// opaqueMask is 0xFF000000 as a signed 32-bit value.
const opaqueMask = int32(-1 << 24)

// Pack combines R, G and B into a single orderable signed integer.
func Pack(r, g, b uint8) int32 {
	return opaqueMask | int32(r)<<16 | int32(g)<<8 | int32(b)
}

// Unpack recovers the exact R, G, B stored by Pack.
func Unpack(p int32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Luminance computes perceptual brightness from R, G, B using the
// Rec. 601 weights, rounded to the nearest integer in [0,255]:
// round(0.299R + 0.587G + 0.114B).
func Luminance(r, g, b uint8) uint8 {
	return uint8((299*int(r) + 587*int(g) + 114*int(b) + 500) / 1000)
}

// packedLuminance computes Luminance directly from a packed color.
func packedLuminance(p int32) uint8 {
	return Luminance(uint8(p>>16), uint8(p>>8), uint8(p))
}
