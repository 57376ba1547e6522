//go:build !nooutline

package fontengine

import "github.com/gogpu/fontengine/text"

// outlineCompiledIn reports whether the binary carries an outline backend.
const outlineCompiledIn = true

// defaultOutlineBackend returns the text package backend with HarfBuzz
// shaping for width measurement, shaping for the UI language.
func defaultOutlineBackend(language func() string) OutlineBackend {
	return newLocalizedTextBackend(text.NewBackend(text.WithShaper(text.NewGoTextShaper())), language)
}
