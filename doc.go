// Package fontengine resolves fonts for a graphical client.
//
// Application code asks for text at a logical size in a display mode; the
// Resolver turns that into a ready-to-render Font, creating and caching one
// on demand:
//
//	settings := config.New()
//	r := fontengine.New(settings, fontengine.NewDefaultSkin())
//	defer r.Close()
//
//	f := r.GetFont(fontengine.SizeUnspecified, fontengine.RequestMono)
//	w := r.TextWidth("Hello", 18, fontengine.RequestUnspecified)
//
// # Modes
//
// Standard, Fallback and Mono fonts are outline fonts rendered by an
// OutlineBackend (by default the text package) at the exact pixel size.
// Simple and SimpleMono fonts are bitmap assets baked at fixed sizes; the
// resolver searches for the asset whose size is nearest to the requested
// one. Without an outline backend every request is served by the bitmap
// modes.
//
// # Sizes
//
// Sizes are logical. The pixel size is
// floor(display density * gui_scaling * size), where the default display
// density is screen_dpi / 96.
//
// # Settings changes
//
// The resolver subscribes to the font settings at construction. When one
// changes it recomputes the active mode and default sizes, closes every
// cached font, and eagerly recreates the default font for the skin.
//
// # Fatal errors
//
// A client without a usable font cannot present its UI. Exhausting every
// outline font candidate, computing a zero pixel size, missing the outline
// backend, or ending up with a skin without a font are reported as a
// *FatalError to the FatalHandler, which by default exits the process.
//
// # Threading
//
// A Resolver is confined to one goroutine (the UI loop) and holds no
// locks. Fonts returned to callers are borrowed; do not close them.
package fontengine
