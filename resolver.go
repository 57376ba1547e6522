package fontengine

import (
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/fontengine/bitmap"
	"github.com/gogpu/fontengine/config"
	"github.com/gogpu/fontengine/locale"
)

// Resolver maps (size, mode) requests to cached fonts.
//
// A Resolver is created once the settings and the skin exist, is owned by
// the application's UI root, and must be closed at shutdown. It is not
// safe for concurrent use.
type Resolver struct {
	settings Settings
	skin     Skin
	display  DisplayMetrics
	assets   AssetStore
	outline  OutlineBackend
	logger   *slog.Logger
	onFatal  FatalHandler
	language func() string

	active   Mode
	defaults [modeCount]uint32
	caches   [modeCount]*fontCache

	// skinFont is the cached font last handed to the skin. When a flush
	// evicts it, it moves to retired and stays open until the skin gets
	// a replacement, because the skin keeps drawing with it.
	skinFont Font
	retired  Font

	closed bool
}

// New creates a resolver, loads the default font of the active mode into
// the skin, and subscribes to the font settings.
//
// New panics if settings or skin is nil.
func New(settings Settings, skin Skin, opts ...Option) *Resolver {
	if settings == nil {
		panic("fontengine: Settings is nil")
	}
	if skin == nil {
		panic("fontengine: Skin is nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.assets == nil {
		o.assets = NewBitmapAssets(bitmap.NewStore(nil))
	}
	if o.display == nil {
		o.display = SettingsDensity{Settings: settings}
	}
	if o.onFatal == nil {
		o.onFatal = ExitOnFatal
	}
	if o.language == nil {
		o.language = func() string {
			if lang := settings.Get(config.KeyLanguage); lang != "" {
				return lang
			}
			return locale.FromEnvironment(os.Getenv)
		}
	}
	if !o.outlineSet {
		o.outline = defaultOutlineBackend(o.language)
	}

	r := &Resolver{
		settings: settings,
		skin:     skin,
		display:  o.display,
		assets:   o.assets,
		outline:  o.outline,
		logger:   o.logger,
		onFatal:  o.onFatal,
		language: o.language,
	}
	for i := range r.caches {
		r.caches[i] = newFontCache()
	}

	r.readSettings()
	r.watchSettings()
	return r
}

// GetFont returns the font for a logical size and mode, creating it on
// first use. It returns nil if a bitmap font cannot be found; callers then
// draw with the skin's font. A closed resolver always returns nil.
//
// The returned font is borrowed from the cache and stays valid until the
// next settings change or Close.
func (r *Resolver) GetFont(size SizeRequest, mode RequestMode) Font {
	if r.closed {
		return nil
	}

	m, s := r.resolve(size, mode)
	if f, ok := r.caches[m].Get(s); ok {
		return f
	}

	if m.IsBitmap() {
		r.createBitmapFont(s, m)
	} else {
		r.createOutlineFont(s, m)
	}

	f, _ := r.caches[m].Get(s)
	return f
}

// resolve normalizes a request into a cache key.
func (r *Resolver) resolve(size SizeRequest, mode RequestMode) (Mode, uint32) {
	m, ok := mode.Mode()
	if !ok {
		m = r.active
	} else if r.active == ModeSimple {
		// No outline fonts: serve every request from bitmap assets.
		if m.IsMono() {
			m = ModeSimpleMono
		} else {
			m = ModeSimple
		}
	}

	if size == SizeUnspecified {
		return m, r.defaults[m]
	}
	return m, uint32(size)
}

// pixelSize scales a logical size by display density and gui_scaling.
func (r *Resolver) pixelSize(size uint32) int {
	px := math.Floor(r.display.Density() * r.settings.GetFloat(config.KeyGUIScaling) * float64(size))
	if math.IsNaN(px) || px < 0 {
		return 0
	}
	if px > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(px)
}

// ActiveMode returns the mode used for RequestUnspecified.
func (r *Resolver) ActiveMode() Mode {
	return r.active
}

// DefaultFontSize returns the default logical size of the active mode.
func (r *Resolver) DefaultFontSize() uint32 {
	return r.defaults[r.active]
}

// CachedCount returns the number of fonts cached for m.
func (r *Resolver) CachedCount(m Mode) int {
	if m < 0 || m >= modeCount {
		return 0
	}
	return r.caches[m].Len()
}

// Close releases every cached font. Settings changes after Close are
// ignored. Close is idempotent.
func (r *Resolver) Close() {
	if r.closed {
		return
	}
	r.flush()
	r.releaseRetired()
	r.skinFont = nil
	r.closed = true
}

// flush closes and drops every cached font in every mode, except the
// skin's current font, which is retired instead.
func (r *Resolver) flush() {
	for m, c := range r.caches {
		c.Clear(func(size uint32, f Font) {
			if r.skinFont != nil && f == r.skinFont {
				r.releaseRetired()
				r.retired = f
				return
			}
			r.release(Mode(m), size, f)
		})
	}
}

// releaseRetired closes the retired skin font, if any.
func (r *Resolver) releaseRetired() {
	if r.retired == nil {
		return
	}
	r.release(r.active, 0, r.retired)
	if r.skinFont == r.retired {
		r.skinFont = nil
	}
	r.retired = nil
}

func (r *Resolver) release(m Mode, size uint32, f Font) {
	if err := f.Close(); err != nil {
		r.log().Warn("failed to release font", "font", f.Name(), "mode", m, "size", size, "err", err)
	}
}

// log returns the resolver's logger, or the package logger.
func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}
