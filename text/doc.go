// Package text is the outline font backend of fontengine.
//
// It loads TrueType/OpenType files and produces fonts at a concrete pixel
// size. The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight parsed font file, one per path
//   - Face: lightweight instance of a FontSource at one pixel size
//   - FontParser: pluggable parsing backend (default: golang.org/x/image)
//   - Shaper: optional width measurement with kerning and ligatures
//     (GoTextShaper, backed by go-text/typesetting)
//   - Backend: creates OutlineFont handles with drop shadow parameters
//
// # Example usage
//
//	backend := text.NewBackend(text.WithShaper(text.NewGoTextShaper()))
//
//	f, err := backend.CreateFont("fonts/Arimo-Regular.ttf", 16, text.Shadow{Offset: 1, Alpha: 127})
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	size := f.Dimension("Hello, world!")
//
// # Pluggable Parser Backend
//
// Parsing is abstracted through the FontParser interface. By default
// golang.org/x/image/font/opentype is used. Custom parsers can be
// registered and selected per source:
//
//	text.RegisterParser("myparser", myCustomParser)
//	backend := text.NewBackend(text.WithSourceOptions(text.WithParser("myparser")))
package text
