package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// The sfnt.Buffer is reused between calls, so a ximageParsedFont must
// not be used from several goroutines at once.
type ximageParsedFont struct {
	font *opentype.Font
	buf  sfnt.Buffer
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	advance, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// Kern implements ParsedFont.Kern.
// Fonts without a kern table report zero.
func (f *ximageParsedFont) Kern(left, right uint16, ppem float64) float64 {
	k, err := f.font.Kern(&f.buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	metrics, err := f.font.Metrics(&f.buf, floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline.
	return FontMetrics{
		Ascent:  fixedToFloat(metrics.Ascent),
		Descent: -fixedToFloat(metrics.Descent),
		LineGap: fixedToFloat(metrics.Height) - fixedToFloat(metrics.Ascent) - fixedToFloat(metrics.Descent),
	}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
