// Package bitmap loads pre-rasterized bitmap fonts.
//
// A bitmap font is baked at one pixel size and is stored either as a PNG
// atlas or as an XML descriptor that points at one. Loaded fonts are
// golang.org/x/image/font/basicfont faces, so they plug into anything that
// accepts a font.Face.
//
// # PNG atlas
//
// A plain PNG is read as a grid of 16 columns by 6 rows holding the
// printable ASCII range U+0020..U+007F in row-major order. Glyph coverage
// is taken from the premultiplied luminance of each pixel, which works for
// white-on-transparent and white-on-black atlases alike.
//
// # XML descriptor
//
// A descriptor overrides the grid layout and metrics:
//
//	<font texture="font_12.png" columns="16" rows="6" first="32"
//	      ascent="10" descent="2" advance="7" linegap="1"/>
//
// The texture path is resolved relative to the descriptor.
package bitmap
