package text

import (
	"fmt"
	"image"
	"slices"
)

// Shadow describes the drop shadow drawn below outline glyphs.
type Shadow struct {
	// Offset is the shadow displacement in pixels, right and down.
	// Zero disables the shadow.
	Offset int

	// Alpha is the shadow opacity in the range 0..255.
	Alpha int
}

// Enabled reports whether the shadow is visible.
func (s Shadow) Enabled() bool {
	return s.Offset > 0 && s.Alpha > 0
}

// Backend creates OutlineFont handles from font files.
//
// Every CreateFont call parses its own FontSource so that each handle
// owns its resources and can be closed independently.
type Backend struct {
	shaper      Shaper
	sourceOpts  []SourceOption
	faceOptions []FaceOption
}

// BackendOption configures a Backend.
type BackendOption func(*Backend)

// WithShaper sets the shaper used to measure text widths.
// The default is BuiltinShaper.
func WithShaper(s Shaper) BackendOption {
	return func(b *Backend) {
		if s != nil {
			b.shaper = s
		}
	}
}

// WithSourceOptions sets options applied to every FontSource the backend parses.
func WithSourceOptions(opts ...SourceOption) BackendOption {
	return func(b *Backend) {
		b.sourceOpts = append(b.sourceOpts, opts...)
	}
}

// WithFaceOptions sets options applied to every Face the backend creates.
func WithFaceOptions(opts ...FaceOption) BackendOption {
	return func(b *Backend) {
		b.faceOptions = append(b.faceOptions, opts...)
	}
}

// NewBackend creates an outline font backend.
func NewBackend(opts ...BackendOption) *Backend {
	b := &Backend{shaper: BuiltinShaper{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CreateFont loads the font file at path and returns a font rendered at
// pixelSize pixels per em with the given shadow. opts apply after the
// backend's face options.
func (b *Backend) CreateFont(path string, pixelSize int, shadow Shadow, opts ...FaceOption) (*OutlineFont, error) {
	if pixelSize < 1 {
		return nil, fmt.Errorf("text: %s at %dpx: %w", path, pixelSize, ErrInvalidPixelSize)
	}

	source, err := NewFontSourceFromFile(path, b.sourceOpts...)
	if err != nil {
		return nil, err
	}

	return &OutlineFont{
		source:    source,
		face:      source.Face(float64(pixelSize), append(slices.Clone(b.faceOptions), opts...)...),
		pixelSize: pixelSize,
		shadow:    shadow,
		shaper:    b.shaper,
		advances:  newAdvanceCache(maxCachedAdvances),
	}, nil
}

// OutlineFont is a font file instantiated at one pixel size.
// It owns its FontSource; Close releases it.
type OutlineFont struct {
	source    *FontSource
	face      Face
	pixelSize int
	shadow    Shadow
	shaper    Shaper
	advances  *advanceCache
}

// Name returns the path the font was loaded from.
func (f *OutlineFont) Name() string {
	return f.source.Path()
}

// Family returns the font family name.
func (f *OutlineFont) Family() string {
	return f.source.Name()
}

// Face returns the underlying face.
func (f *OutlineFont) Face() Face {
	return f.face
}

// PixelSize returns the size in pixels per em.
func (f *OutlineFont) PixelSize() int {
	return f.pixelSize
}

// Shadow returns the drop shadow parameters.
func (f *OutlineFont) Shadow() Shadow {
	return f.shadow
}

// Dimension returns the pixel size of the box needed to draw s,
// shadow included. The height does not depend on s.
func (f *OutlineFont) Dimension(s string) image.Point {
	m := f.face.Metrics()
	height := ceilPixels(m.Ascent) + ceilPixels(m.Descent)

	var width int
	if s != "" {
		width = ceilPixels(f.advances.advance(s, f.measure))
	}

	if f.shadow.Enabled() {
		height += f.shadow.Offset
		if width > 0 {
			width += f.shadow.Offset
		}
	}
	return image.Pt(width, height)
}

// KerningHeight returns the extra vertical space between lines.
func (f *OutlineFont) KerningHeight() int {
	return ceilPixels(f.face.Metrics().LineGap)
}

// Close releases the font source. Calling Close more than once
// returns ErrSourceClosed.
func (f *OutlineFont) Close() error {
	if f.source.Closed() {
		return ErrSourceClosed
	}
	f.advances.clear()
	f.shaper.Release(f.source)
	return f.source.Close()
}

func (f *OutlineFont) measure(s string) float64 {
	return f.shaper.Advance(s, f.face)
}
