package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidPixelSize is returned when a font is requested at a
	// pixel size below one.
	ErrInvalidPixelSize = errors.New("text: pixel size must be positive")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source is closed")
)
