package bitmap

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Font is a bitmap font at its baked pixel size.
type Font struct {
	name    string
	face    *basicfont.Face
	lineGap int
	closed  bool
}

// Face7x13 returns the 7x13 fixed font from golang.org/x/image as a Font.
// It needs no assets and is the last-resort font of a client.
func Face7x13() *Font {
	return &Font{name: "basicfont.Face7x13", face: basicfont.Face7x13}
}

// Name returns the asset name the font was loaded from.
func (f *Font) Name() string {
	return f.name
}

// Face returns the font as an x/image face.
func (f *Font) Face() font.Face {
	return f.face
}

// PixelSize returns the baked glyph cell height.
func (f *Font) PixelSize() int {
	return f.face.Height
}

// Dimension returns the pixel size of the box needed to draw s.
// The height is ascent plus descent and does not depend on s.
func (f *Font) Dimension(s string) image.Point {
	return image.Pt(font.MeasureString(f.face, s).Ceil(), f.face.Ascent+f.face.Descent)
}

// KerningHeight returns the extra vertical space between lines.
func (f *Font) KerningHeight() int {
	return f.lineGap
}

// Close drops the glyph atlas.
func (f *Font) Close() error {
	if f.closed {
		return ErrClosed
	}
	f.closed = true
	// The shared Face7x13 must stay intact for other users.
	if f.face != basicfont.Face7x13 {
		f.face.Mask = nil
	}
	return nil
}
