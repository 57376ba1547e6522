package fontengine

// sampleText is measured for text and line heights. It mixes ascenders,
// descenders and capitals.
const sampleText = "Some unimportant example String"

// TextWidth returns the width of text in pixels.
func (r *Resolver) TextWidth(text string, size SizeRequest, mode RequestMode) int {
	return r.fontOrSkin(size, mode).Dimension(text).X
}

// TextHeight returns the height of a line of text in pixels.
func (r *Resolver) TextHeight(size SizeRequest, mode RequestMode) int {
	return r.fontOrSkin(size, mode).Dimension(sampleText).Y
}

// LineHeight returns the distance between baselines of consecutive
// lines: the text height plus the font's extra line spacing.
func (r *Resolver) LineHeight(size SizeRequest, mode RequestMode) int {
	f := r.fontOrSkin(size, mode)
	return f.Dimension(sampleText).Y + f.KerningHeight()
}

// fontOrSkin returns the requested font, or the skin's font when the
// resolver has none.
func (r *Resolver) fontOrSkin(size SizeRequest, mode RequestMode) Font {
	if f := r.GetFont(size, mode); f != nil {
		return f
	}
	f := r.skin.Font()
	if f == nil {
		m, s := r.resolve(size, mode)
		r.raise(&FatalError{Op: "measure", Mode: m, Size: s, Err: ErrNoSkinFont})
	}
	return f
}
