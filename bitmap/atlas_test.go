package bitmap

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestNewFaceGlyphMask(t *testing.T) {
	// 2x1 grid, cells 3x4. Cell 0 is empty, cell 1 is fully lit.
	img := image.NewGray(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 3; x < 6; x++ {
			img.SetGray(x, y, color.Gray{Y: 0xff})
		}
	}

	face, err := NewFace(img, Layout{Columns: 2, Rows: 1, First: 'a', Ascent: 3, Descent: 1})
	if err != nil {
		t.Fatalf("NewFace failed: %v", err)
	}

	_, mask, maskp, adv, ok := face.Glyph(fixed.P(0, 3), 'b')
	if !ok {
		t.Fatal("Glyph('b') not found")
	}
	if adv != fixed.I(3) {
		t.Errorf("advance = %v, want 3", adv)
	}
	if _, _, _, a := mask.At(maskp.X+1, maskp.Y+1).RGBA(); a != 0xffff {
		t.Errorf("lit glyph alpha = %#x, want 0xffff", a)
	}

	_, mask, maskp, _, _ = face.Glyph(fixed.P(0, 3), 'a')
	if _, _, _, a := mask.At(maskp.X+1, maskp.Y+1).RGBA(); a != 0 {
		t.Errorf("empty glyph alpha = %#x, want 0", a)
	}

	if got := font.MeasureString(face, "ab").Ceil(); got != 6 {
		t.Errorf("MeasureString(ab) = %d, want 6", got)
	}
}

func TestNewFaceGlyphStrideShorterThanCell(t *testing.T) {
	// 2x1 grid, cells 4x10, glyphs 8 rows tall. Cell 0 is lit only below
	// its glyph rows, cell 1 is fully lit.
	img := image.NewGray(image.Rect(0, 0, 8, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 8; x++ {
			if x >= 4 || y >= 8 {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}

	face, err := NewFace(img, Layout{Columns: 2, Rows: 1, First: 'A', Ascent: 6, Descent: 2})
	if err != nil {
		t.Fatalf("NewFace failed: %v", err)
	}
	if got := face.Mask.Bounds().Dy(); got != 16 {
		t.Errorf("mask height = %d, want 16 (two 8 row glyphs)", got)
	}

	tests := []struct {
		r     rune
		wantY int
		alpha uint32
	}{
		{'A', 0, 0},
		{'B', 8, 0xffff},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			_, mask, maskp, _, ok := face.Glyph(fixed.P(0, 6), tt.r)
			if !ok {
				t.Fatalf("Glyph(%q) not found", tt.r)
			}
			if maskp.Y != tt.wantY {
				t.Errorf("maskp.Y = %d, want %d", maskp.Y, tt.wantY)
			}
			for y := 0; y < 8; y++ {
				if _, _, _, a := mask.At(maskp.X+1, maskp.Y+y).RGBA(); a != tt.alpha {
					t.Errorf("row %d alpha = %#x, want %#x", y, a, tt.alpha)
				}
			}
		})
	}
}

func TestNewFaceBadLayout(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))

	tests := []struct {
		name   string
		layout Layout
	}{
		{"no columns", Layout{Rows: 1}},
		{"cells too small", Layout{Columns: 16, Rows: 16}},
		{"metrics exceed cell", Layout{Columns: 1, Rows: 1, Ascent: 7, Descent: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFace(img, tt.layout); !errors.Is(err, ErrBadLayout) {
				t.Errorf("error = %v, want ErrBadLayout", err)
			}
		})
	}
}

func TestFace7x13(t *testing.T) {
	f := Face7x13()
	if got := f.Dimension("Hello, world!"); got != image.Pt(13*7, 13) {
		t.Errorf("Dimension = %v, want (91,13)", got)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	// The package level face must survive Close.
	if basicfont.Face7x13.Mask == nil {
		t.Error("Close dropped the shared Face7x13 mask")
	}
}
