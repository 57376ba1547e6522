package fontengine

import (
	"github.com/gogpu/fontengine/bitmap"
	"github.com/gogpu/fontengine/locale"
	"github.com/gogpu/fontengine/text"
)

// textBackend adapts *text.Backend to OutlineBackend.
type textBackend struct {
	backend  *text.Backend
	language func() string
}

// NewTextBackend wraps an outline backend from the text package.
func NewTextBackend(b *text.Backend) OutlineBackend {
	return textBackend{backend: b}
}

// newLocalizedTextBackend wraps b so that every face is shaped for the
// language reported by language at creation time, right to left for
// scripts such as Arabic and Hebrew.
func newLocalizedTextBackend(b *text.Backend, language func() string) OutlineBackend {
	return textBackend{backend: b, language: language}
}

// CreateFont implements OutlineBackend.
func (b textBackend) CreateFont(path string, pixelSize int, shadow text.Shadow) (Font, error) {
	f, err := b.backend.CreateFont(path, pixelSize, shadow, b.faceOptions()...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (b textBackend) faceOptions() []text.FaceOption {
	if b.language == nil {
		return nil
	}
	lang := b.language()
	tag, ok := locale.Parse(lang)
	if !ok {
		return nil
	}
	opts := []text.FaceOption{text.WithLanguage(tag.String())}
	if locale.RightToLeft(lang) {
		opts = append(opts, text.WithDirection(text.DirectionRTL))
	}
	return opts
}

// bitmapAssets adapts *bitmap.Store to AssetStore.
type bitmapAssets struct {
	store *bitmap.Store
}

// NewBitmapAssets wraps a bitmap asset store.
func NewBitmapAssets(s *bitmap.Store) AssetStore {
	return bitmapAssets{store: s}
}

// Exists implements AssetStore.
func (a bitmapAssets) Exists(name string) bool {
	return a.store.Exists(name)
}

// LoadFont implements AssetStore.
func (a bitmapAssets) LoadFont(name string) (Font, error) {
	f, err := a.store.LoadFont(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// DefaultSkin is a Skin holding a single font. It starts out with the
// built-in 7x13 bitmap font, so it always has one.
type DefaultSkin struct {
	font Font
}

// NewDefaultSkin returns a skin using bitmap.Face7x13.
func NewDefaultSkin() *DefaultSkin {
	return &DefaultSkin{font: bitmap.Face7x13()}
}

// SetFont implements Skin. A nil font is ignored.
func (s *DefaultSkin) SetFont(f Font) {
	if f != nil {
		s.font = f
	}
}

// Font implements Skin.
func (s *DefaultSkin) Font() Font {
	return s.font
}
