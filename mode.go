package fontengine

import "math"

// Mode is a font rendering strategy. It is the stored form; requests use
// RequestMode, which adds RequestUnspecified.
type Mode int

const (
	// ModeStandard is the main outline font.
	ModeStandard Mode = iota
	// ModeFallback is the outline font for scripts the main font lacks.
	ModeFallback
	// ModeMono is the monospace outline font.
	ModeMono
	// ModeSimple is the bitmap font.
	ModeSimple
	// ModeSimpleMono is the monospace bitmap font.
	ModeSimpleMono

	modeCount
)

// Modes lists every Mode in declaration order.
var Modes = [...]Mode{ModeStandard, ModeFallback, ModeMono, ModeSimple, ModeSimpleMono}

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "Standard"
	case ModeFallback:
		return "Fallback"
	case ModeMono:
		return "Mono"
	case ModeSimple:
		return "Simple"
	case ModeSimpleMono:
		return "SimpleMono"
	default:
		return "Unknown"
	}
}

// IsBitmap reports whether the mode is served by bitmap assets.
func (m Mode) IsBitmap() bool {
	return m == ModeSimple || m == ModeSimpleMono
}

// IsMono reports whether the mode is monospace.
func (m Mode) IsMono() bool {
	return m == ModeMono || m == ModeSimpleMono
}

// Request converts the mode into a request for exactly that mode.
func (m Mode) Request() RequestMode {
	return RequestMode(m + 1)
}

// settingPrefix returns the prefix of the font_* keys for the mode.
func (m Mode) settingPrefix() string {
	switch m {
	case ModeFallback:
		return "fallback_"
	case ModeMono, ModeSimpleMono:
		return "mono_"
	default:
		return ""
	}
}

// RequestMode is the mode argument of a font request.
type RequestMode int

const (
	// RequestUnspecified selects the resolver's active mode.
	RequestUnspecified RequestMode = iota
	RequestStandard
	RequestFallback
	RequestMono
	RequestSimple
	RequestSimpleMono
)

// Mode returns the requested mode, or false for RequestUnspecified and
// out of range values.
func (r RequestMode) Mode() (Mode, bool) {
	if r <= RequestUnspecified || r > RequestSimpleMono {
		return 0, false
	}
	return Mode(r - 1), true
}

// String returns the string representation of the request.
func (r RequestMode) String() string {
	if m, ok := r.Mode(); ok {
		return m.String()
	}
	return "Unspecified"
}

// SizeRequest is a logical font size, or SizeUnspecified.
type SizeRequest uint32

// SizeUnspecified selects the default size of the resolved mode.
const SizeUnspecified SizeRequest = math.MaxUint32

// DefaultFontSize is used when a size setting is missing or malformed.
const DefaultFontSize = 16
