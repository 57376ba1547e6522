package bitmap

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"
)

// Layout describes how glyphs are arranged in an atlas image and the
// metrics of the resulting face. Zero metric fields are derived from the
// cell size.
type Layout struct {
	Columns int
	Rows    int
	First   rune

	Ascent  int
	Descent int
	Advance int
	LineGap int
}

// DefaultLayout is the printable ASCII grid used for plain PNG atlases.
var DefaultLayout = Layout{Columns: 16, Rows: 6, First: ' '}

// NewFace slices img into glyph cells according to l and returns a
// basicfont face with the glyphs stacked vertically, the way basicfont
// addresses its mask. Rows of a cell below Ascent+Descent are dropped.
func NewFace(img image.Image, l Layout) (*basicfont.Face, error) {
	if l.Columns < 1 || l.Rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrBadLayout, l.Columns, l.Rows)
	}

	b := img.Bounds()
	cellW, cellH := b.Dx()/l.Columns, b.Dy()/l.Rows
	if cellW < 1 || cellH < 1 {
		return nil, fmt.Errorf("%w: %dx%d image for %dx%d grid", ErrBadLayout, b.Dx(), b.Dy(), l.Columns, l.Rows)
	}

	ascent, descent := l.Ascent, l.Descent
	switch {
	case ascent == 0 && descent == 0:
		descent = cellH / 5
		ascent = cellH - descent
	case ascent == 0:
		ascent = cellH - descent
	case descent == 0:
		descent = max(cellH-ascent, 0)
	}
	if ascent < 0 || descent < 0 || ascent+descent > cellH {
		return nil, fmt.Errorf("%w: ascent %d + descent %d exceeds cell height %d", ErrBadLayout, ascent, descent, cellH)
	}

	// basicfont finds glyph i at row i*(Ascent+Descent) of the mask, so
	// each glyph keeps only the top Ascent+Descent rows of its cell.
	glyphH := ascent + descent
	count := l.Columns * l.Rows
	mask := image.NewAlpha(image.Rect(0, 0, cellW, glyphH*count))
	for i := 0; i < count; i++ {
		cx := b.Min.X + (i%l.Columns)*cellW
		cy := b.Min.Y + (i/l.Columns)*cellH
		for y := 0; y < glyphH; y++ {
			for x := 0; x < cellW; x++ {
				g := color.GrayModel.Convert(img.At(cx+x, cy+y)).(color.Gray)
				mask.SetAlpha(x, i*glyphH+y, color.Alpha{A: g.Y})
			}
		}
	}

	advance := l.Advance
	if advance == 0 {
		advance = cellW
	}

	return &basicfont.Face{
		Advance: advance,
		Width:   cellW,
		Height:  cellH,
		Ascent:  ascent,
		Descent: descent,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: l.First, High: l.First + rune(count), Offset: 0},
		},
	}, nil
}
