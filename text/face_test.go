package text

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T, size float64) Face {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })
	return source.Face(size)
}

func TestFaceMetricsScale(t *testing.T) {
	small := newTestFace(t, 16).Metrics()
	large := newTestFace(t, 32).Metrics()

	if small.Ascent <= 0 || small.Descent <= 0 {
		t.Fatalf("expected positive ascent and descent, got %+v", small)
	}
	// Hinting rounds to whole pixels, so allow a pixel of slack.
	if math.Abs(large.Height()-2*small.Height()) > 2 {
		t.Errorf("height at 32px = %v, want about twice %v", large.Height(), small.Height())
	}
	if small.LineGap < 0 {
		t.Errorf("LineGap = %v, want non-negative", small.LineGap)
	}
}

func TestFaceAdvance(t *testing.T) {
	face := newTestFace(t, 16)

	tests := []struct {
		name string
		a, b string
	}{
		{"longer text is wider", "a", "ab"},
		{"capital M wider than i", "i", "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if face.Advance(tt.a) >= face.Advance(tt.b) {
				t.Errorf("Advance(%q)=%v, Advance(%q)=%v", tt.a, face.Advance(tt.a), tt.b, face.Advance(tt.b))
			}
		})
	}

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
}

func TestFaceHasGlyph(t *testing.T) {
	face := newTestFace(t, 16)

	if !face.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}
	if face.HasGlyph('\U0001F600') {
		t.Error("HasGlyph(emoji) = true for Go Regular")
	}
}

func TestFaceAfterSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	face := source.Face(16, WithLanguage("de"))
	_ = source.Close()

	if face.Advance("abc") != 0 {
		t.Error("Advance on closed source should be 0")
	}
	if face.Metrics() != (Metrics{}) {
		t.Error("Metrics on closed source should be zero")
	}
	if face.Language() != "de" {
		t.Errorf("Language() = %q, want de", face.Language())
	}
}
