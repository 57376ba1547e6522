//go:build nooutline

package fontengine

// outlineCompiledIn reports whether the binary carries an outline backend.
const outlineCompiledIn = false

// defaultOutlineBackend returns nil; builds tagged nooutline serve every
// request from bitmap assets unless a backend is passed with
// WithOutlineBackend.
func defaultOutlineBackend(func() string) OutlineBackend {
	return nil
}
