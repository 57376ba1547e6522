package fontengine

import "log/slog"

// Option configures a Resolver during creation.
//
// Example:
//
//	// Bitmap fonts only, assets embedded in the binary
//	r := fontengine.New(settings, skin,
//	    fontengine.WithoutOutlineBackend(),
//	    fontengine.WithAssets(fontengine.NewBitmapAssets(bitmap.NewStore(assetsFS))))
type Option func(*options)

// options holds optional configuration for Resolver creation.
type options struct {
	outline    OutlineBackend
	outlineSet bool
	assets     AssetStore
	display    DisplayMetrics
	onFatal    FatalHandler
	logger     *slog.Logger
	language   func() string
}

// WithOutlineBackend sets the backend used for Standard, Fallback and
// Mono fonts. The default is the text package backend, unless the binary
// is built with the nooutline tag.
func WithOutlineBackend(b OutlineBackend) Option {
	return func(o *options) {
		o.outline = b
		o.outlineSet = true
	}
}

// WithoutOutlineBackend disables outline fonts; every request is served
// from bitmap assets.
func WithoutOutlineBackend() Option {
	return WithOutlineBackend(nil)
}

// WithAssets sets the bitmap asset store. The default reads asset names
// as operating system paths.
func WithAssets(a AssetStore) Option {
	return func(o *options) {
		o.assets = a
	}
}

// WithDisplayMetrics sets the display density source. The default is
// SettingsDensity (screen_dpi / 96).
func WithDisplayMetrics(d DisplayMetrics) Option {
	return func(o *options) {
		o.display = d
	}
}

// WithFatalHandler sets the handler for unrecoverable errors. The default
// is ExitOnFatal.
func WithFatalHandler(h FatalHandler) Option {
	return func(o *options) {
		o.onFatal = h
	}
}

// WithLogger sets the resolver's logger. The default follows SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLanguage sets the function that reports the UI language used to
// decide between the Standard and Fallback fonts. The default reads the
// language setting and then the POSIX locale environment.
func WithLanguage(fn func() string) Option {
	return func(o *options) {
		o.language = fn
	}
}
