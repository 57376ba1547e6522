package fontengine

import (
	"errors"
	"testing"
)

func TestMeasure(t *testing.T) {
	r := newTestResolver(t, testSettings(), &nilSkin{}, WithOutlineBackend(newFakeBackend("main.ttf")))

	if got := r.TextWidth("abcd", 20, RequestStandard); got != 40 {
		t.Errorf("TextWidth = %d, want 40", got)
	}
	if got := r.TextHeight(20, RequestStandard); got != 20 {
		t.Errorf("TextHeight = %d, want 20", got)
	}
	if got := r.LineHeight(20, RequestStandard); got != 22 {
		t.Errorf("LineHeight = %d, want 22", got)
	}
	if got := r.TextHeight(SizeUnspecified, RequestUnspecified); got != 16 {
		t.Errorf("TextHeight at the default size = %d, want 16", got)
	}
}

func TestMeasureFallsBackToSkinFont(t *testing.T) {
	skin := NewDefaultSkin()
	s := testSettings()
	r := newTestResolver(t, s, skin, WithoutOutlineBackend(), WithAssets(newFakeAssets()))

	sf := skin.Font()
	if got, want := r.TextHeight(12, RequestSimple), sf.Dimension(sampleText).Y; got != want {
		t.Errorf("TextHeight = %d, want skin font height %d", got, want)
	}
	if got, want := r.TextWidth("hello", 12, RequestSimple), sf.Dimension("hello").X; got != want {
		t.Errorf("TextWidth = %d, want skin font width %d", got, want)
	}
	if got, want := r.LineHeight(12, RequestSimple), sf.Dimension(sampleText).Y+sf.KerningHeight(); got != want {
		t.Errorf("LineHeight = %d, want %d", got, want)
	}
}

func TestMeasureWithoutAnyFontIsFatal(t *testing.T) {
	skin := &nilSkin{}
	r := newTestResolver(t, testSettings(), skin,
		WithOutlineBackend(newFakeBackend("main.ttf")),
		WithAssets(newFakeAssets()))
	skin.font = nil

	// Simple is not downgraded while outline fonts are active; main.ttf
	// has no bitmap variant, so there is no font to measure with.
	fe := expectFatal(t, func() { r.TextHeight(12, RequestSimple) })
	if !errors.Is(fe, ErrNoSkinFont) {
		t.Errorf("error = %v, want ErrNoSkinFont", fe)
	}
	if fe.Op != "measure" || fe.Mode != ModeSimple || fe.Size != 12 {
		t.Errorf("FatalError = %+v, want measure of Simple size 12", fe)
	}
}
