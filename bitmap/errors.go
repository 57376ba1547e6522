package bitmap

import "errors"

// Sentinel errors for bitmap package.
var (
	// ErrUnsupportedFormat is returned for asset names whose extension is
	// neither .png nor .xml.
	ErrUnsupportedFormat = errors.New("bitmap: unsupported font asset format")

	// ErrInvalidName is returned for names the asset filesystem cannot address.
	ErrInvalidName = errors.New("bitmap: invalid asset name")

	// ErrBadLayout is returned when an atlas does not divide into glyph cells.
	ErrBadLayout = errors.New("bitmap: atlas does not fit the glyph grid")

	// ErrClosed is returned when a font is closed twice.
	ErrClosed = errors.New("bitmap: font is closed")
)
