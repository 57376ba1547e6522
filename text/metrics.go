package text

import "math"

// Metrics holds font metrics of a face, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// Unlike FontMetrics.Descent, this is stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Height returns the glyph box height (ascent + descent).
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// ceilPixels rounds a fractional pixel measure up to whole pixels.
func ceilPixels(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(v))
}
