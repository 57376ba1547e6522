package text

// Face represents a font face at a specific pixel size.
// This is a lightweight object that can be created from a FontSource.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// including pair kerning from the font's kern table.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Direction returns the text direction for this face.
	Direction() Direction

	// Language returns the language tag used for shaping.
	Language() string

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	fm := parsed.Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline)
	// Metrics.Descent is positive (absolute distance from baseline)
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}
	lineGap := fm.LineGap
	if lineGap < 0 {
		lineGap = 0
	}

	return Metrics{
		Ascent:  fm.Ascent,
		Descent: descent,
		LineGap: lineGap,
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}

	total := 0.0
	var prev uint16
	for i, r := range text {
		gid := parsed.GlyphIndex(r)
		if i > 0 {
			total += parsed.Kern(prev, gid, f.size)
		}
		total += parsed.GlyphAdvance(gid, f.size)
		prev = gid
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	if parsed == nil {
		return false
	}
	return parsed.GlyphIndex(r) != 0
}

// Direction implements Face.Direction.
func (f *sourceFace) Direction() Direction {
	return f.config.direction
}

// Language implements Face.Language.
func (f *sourceFace) Language() string {
	return f.config.language
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// private implements the Face interface.
func (f *sourceFace) private() {}
