package fontengine

import "errors"

// Sentinel errors carried by FatalError.
var (
	// ErrZeroPixelSize means a logical size scaled to zero pixels.
	ErrZeroPixelSize = errors.New("fontengine: font size scales to zero pixels")

	// ErrNoOutlineBackend means an outline mode was resolved without an
	// outline backend.
	ErrNoOutlineBackend = errors.New("fontengine: no outline font backend")

	// ErrNoUsableFont means every outline font candidate failed to load.
	ErrNoUsableFont = errors.New("fontengine: no usable font")

	// ErrNoSkinFont means neither the resolver nor the skin has a font.
	ErrNoSkinFont = errors.New("fontengine: skin has no font")
)
