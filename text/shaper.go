package text

// Shaper measures runs of text on a face.
// Implementations provide different levels of shaping support:
//   - BuiltinShaper: per-glyph advances plus kern table pairs
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Advance returns the horizontal advance of text in pixels.
	Advance(text string, face Face) float64

	// Release drops any state the shaper keeps for source.
	// It is called when an OutlineFont built on source is closed.
	Release(source *FontSource)
}

// BuiltinShaper measures text with Face.Advance and keeps no state.
type BuiltinShaper struct{}

// Advance implements Shaper.Advance.
func (BuiltinShaper) Advance(text string, face Face) float64 {
	if face == nil {
		return 0
	}
	return face.Advance(text)
}

// Release implements Shaper.Release.
func (BuiltinShaper) Release(*FontSource) {}
