package fontengine

import (
	"image"

	"github.com/gogpu/fontengine/config"
	"github.com/gogpu/fontengine/text"
)

// Font is a backend font at a concrete pixel size.
// A Font returned by the Resolver is owned by its cache; callers must
// not Close it.
type Font interface {
	// Name identifies the font, usually the file or asset it came from.
	Name() string

	// Dimension returns the pixel size of the box needed to draw s.
	Dimension(s string) image.Point

	// KerningHeight returns the extra vertical space between lines.
	KerningHeight() int

	// Close releases the font's resources.
	Close() error
}

// Settings is the read side of the client configuration.
// *config.Settings implements it.
type Settings interface {
	Get(key string) string
	Default(key string) string
	GetInt(key string) (int, error)
	GetFloat(key string) float64
	GetBool(key string) bool

	// Watch registers fn to run synchronously whenever any of keys
	// changes. A batch of changes runs fn once.
	Watch(fn func(key string), keys ...string)
}

// DisplayMetrics reports the display density in pixels per logical unit.
type DisplayMetrics interface {
	Density() float64
}

// AssetStore finds and loads bitmap font assets.
type AssetStore interface {
	Exists(name string) bool
	LoadFont(name string) (Font, error)
}

// OutlineBackend instantiates outline fonts at a pixel size.
type OutlineBackend interface {
	CreateFont(path string, pixelSize int, shadow text.Shadow) (Font, error)
}

// Skin receives the default font and supplies the font used when the
// resolver has none.
type Skin interface {
	SetFont(f Font)
	Font() Font
}

var _ Settings = (*config.Settings)(nil)

// ReferenceDPI is the screen_dpi at which the display density is 1.
const ReferenceDPI = 96.0

// SettingsDensity derives the display density from the screen_dpi setting.
type SettingsDensity struct {
	Settings Settings
}

// Density implements DisplayMetrics.
func (d SettingsDensity) Density() float64 {
	return d.Settings.GetFloat(config.KeyScreenDPI) / ReferenceDPI
}

// FixedDensity is a DisplayMetrics with a constant density.
type FixedDensity float64

// Density implements DisplayMetrics.
func (d FixedDensity) Density() float64 {
	return float64(d)
}
