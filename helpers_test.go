package fontengine

import (
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/gogpu/fontengine/config"
	"github.com/gogpu/fontengine/text"
)

// fakeFont is a Font whose width is half its pixel size per byte.
type fakeFont struct {
	name   string
	px     int
	shadow text.Shadow
	closed int
}

func (f *fakeFont) Name() string { return f.name }

func (f *fakeFont) Dimension(s string) image.Point {
	return image.Pt(len(s)*f.px/2, f.px)
}

func (f *fakeFont) KerningHeight() int { return 2 }

func (f *fakeFont) Close() error {
	f.closed++
	if f.closed > 1 {
		return errors.New("closed twice")
	}
	return nil
}

// fakeBackend creates fakeFonts for the paths in valid.
type fakeBackend struct {
	valid   map[string]bool
	created []*fakeFont
	tried   []string
}

func newFakeBackend(paths ...string) *fakeBackend {
	b := &fakeBackend{valid: make(map[string]bool)}
	for _, p := range paths {
		b.valid[p] = true
	}
	return b
}

func (b *fakeBackend) CreateFont(path string, pixelSize int, shadow text.Shadow) (Font, error) {
	b.tried = append(b.tried, path)
	if !b.valid[path] {
		return nil, fmt.Errorf("no such font %q", path)
	}
	f := &fakeFont{name: path, px: pixelSize, shadow: shadow}
	b.created = append(b.created, f)
	return f, nil
}

// fakeAssets serves fakeFonts for loadable names and records every
// existence probe.
type fakeAssets struct {
	exists   map[string]bool
	loadable map[string]bool
	probed   []string
	loaded   []*fakeFont
}

func newFakeAssets(names ...string) *fakeAssets {
	a := &fakeAssets{exists: make(map[string]bool), loadable: make(map[string]bool)}
	for _, n := range names {
		a.exists[n] = true
		a.loadable[n] = true
	}
	return a
}

func (a *fakeAssets) Exists(name string) bool {
	a.probed = append(a.probed, name)
	return a.exists[name]
}

func (a *fakeAssets) LoadFont(name string) (Font, error) {
	if !a.loadable[name] {
		return nil, fmt.Errorf("corrupt asset %q", name)
	}
	f := &fakeFont{name: name, px: 10}
	a.loaded = append(a.loaded, f)
	return f, nil
}

// nilSkin is a Skin that never has a font of its own.
type nilSkin struct {
	font Font
}

func (s *nilSkin) SetFont(f Font) { s.font = f }
func (s *nilSkin) Font() Font     { return s.font }

// testSettings returns settings with a valid main font and English UI.
func testSettings() *config.Settings {
	s := config.New()
	s.Set(config.KeyFontPath, "main.ttf")
	s.Set(config.KeyLanguage, "en")
	return s
}

// newTestResolver builds a resolver with density 1 that panics on fatal errors.
func newTestResolver(t *testing.T, s Settings, skin Skin, opts ...Option) *Resolver {
	t.Helper()

	base := []Option{
		WithDisplayMetrics(FixedDensity(1)),
		WithFatalHandler(PanicOnFatal),
	}
	r := New(s, skin, append(base, opts...)...)
	t.Cleanup(r.Close)
	return r
}

// expectFatal runs fn and returns the FatalError it raised.
func expectFatal(t *testing.T, fn func()) (fe *FatalError) {
	t.Helper()

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected a fatal error, got none")
		}
		var ok bool
		if fe, ok = rec.(*FatalError); !ok {
			t.Fatalf("panic value %T (%v), want *FatalError", rec, rec)
		}
	}()
	fn()
	return nil
}
