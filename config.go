package pixsort

import "fmt"

// Mode selects which threshold pair governs run detection.
type Mode uint8

const (
	// ModeWhite compares packed values against WhiteValue.
	ModeWhite Mode = iota

	// ModeBlack compares packed values against BlackValue.
	ModeBlack

	// ModeBright compares luminance against BrightValue.
	ModeBright

	// ModeDark compares luminance against DarkValue.
	ModeDark
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeWhite:
		return "white"
	case ModeBlack:
		return "black"
	case ModeBright:
		return "bright"
	case ModeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name ("white", "black", "bright", "dark")
// into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "white":
		return ModeWhite, nil
	case "black":
		return ModeBlack, nil
	case "bright":
		return ModeBright, nil
	case "dark":
		return ModeDark, nil
	default:
		return 0, fmt.Errorf("pixsort: unknown mode %q", s)
	}
}

// Default thresholds. WhiteValue and BlackValue live in the signed
// packed-color space [-16777216, -1]; BrightValue and DarkValue are
// luminance levels in [0, 255].
const (
	DefaultWhiteValue  int32 = -12345678
	DefaultBlackValue  int32 = -16000000
	DefaultBrightValue       = 127
	DefaultDarkValue         = 223
)

// Config holds the sort mode and the four run-detection thresholds.
// Only the pair relevant to the active mode is consulted during a sort.
type Config struct {
	Mode Mode

	// WhiteValue and BlackValue are compared directly against signed
	// packed colors in White and Black mode respectively.
	WhiteValue int32
	BlackValue int32

	// BrightValue and DarkValue are compared against luminance in
	// Bright and Dark mode respectively. Values are clamped to [0,255].
	BrightValue int
	DarkValue   int
}

// DefaultConfig returns a Config for the given mode with all four
// thresholds at their defaults.
func DefaultConfig(mode Mode) Config {
	return Config{
		Mode:        mode,
		WhiteValue:  DefaultWhiteValue,
		BlackValue:  DefaultBlackValue,
		BrightValue: DefaultBrightValue,
		DarkValue:   DefaultDarkValue,
	}
}

// predicate is evaluated against a packed color.
type predicate func(p int32) bool

// predicates returns the start/continue predicate pair for the active
// mode. A run starts at the first pixel passing start; it keeps
// extending while following pixels pass cont. The two tests point in
// opposite directions on purpose: that asymmetry is what yields
// variable-length streaks instead of whole-line sorts.
func (c Config) predicates() (start, cont predicate) {
	switch c.Mode {
	case ModeWhite:
		w := c.WhiteValue
		return func(p int32) bool { return p >= w },
			func(p int32) bool { return p <= w }
	case ModeBlack:
		b := c.BlackValue
		return func(p int32) bool { return p <= b },
			func(p int32) bool { return p >= b }
	case ModeBright:
		v := clampLevel(c.BrightValue)
		return func(p int32) bool { return packedLuminance(p) >= v },
			func(p int32) bool { return packedLuminance(p) <= v }
	case ModeDark:
		v := clampLevel(c.DarkValue)
		return func(p int32) bool { return packedLuminance(p) <= v },
			func(p int32) bool { return packedLuminance(p) >= v }
	default:
		// Unknown modes never form runs.
		return func(int32) bool { return false },
			func(int32) bool { return false }
	}
}

// clampLevel clamps a luminance threshold to [0,255].
func clampLevel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
