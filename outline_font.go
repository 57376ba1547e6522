package fontengine

import (
	"fmt"

	"github.com/gogpu/fontengine/config"
	"github.com/gogpu/fontengine/text"
)

// createOutlineFont instantiates the outline font for mode at size and
// caches it. Every failure here is fatal.
func (r *Resolver) createOutlineFont(size uint32, mode Mode) {
	if _, ok := r.caches[mode].Get(size); ok {
		return
	}

	px := r.pixelSize(size)
	if px == 0 {
		r.raise(&FatalError{
			Op:   "outline",
			Mode: mode,
			Size: size,
			Detail: fmt.Sprintf("display density %g, gui_scaling %g",
				r.display.Density(), r.settings.GetFloat(config.KeyGUIScaling)),
			Err: ErrZeroPixelSize,
		})
	}

	if r.outline == nil {
		detail := "outline fonts are disabled"
		if !outlineCompiledIn {
			detail = "built with the nooutline tag"
		}
		r.raise(&FatalError{Op: "outline", Mode: mode, Size: size, PixelSize: px, Detail: detail, Err: ErrNoOutlineBackend})
	}

	prefix := mode.settingPrefix()
	shadow := text.Shadow{
		Offset: r.optionalInt(prefix + "font_shadow"),
		Alpha:  r.optionalInt(prefix + "font_shadow_alpha"),
	}

	candidates := []string{
		r.settings.Get(prefix + "font_path"),
		r.settings.Get(config.KeyFallbackFontPath),
		r.settings.Default(prefix + "font_path"),
	}

	for _, path := range candidates {
		if path == "" {
			continue
		}
		f, err := r.outline.CreateFont(path, px, shadow)
		if err == nil && f != nil {
			r.caches[mode].Set(size, f)
			r.log().Debug("loaded outline font", "font", path, "mode", mode, "size", size, "pixels", px)
			return
		}
		r.log().Warn("cannot load font, trying the next candidate", "path", path, "err", err)
	}

	r.raise(&FatalError{
		Op:        "outline",
		Mode:      mode,
		Size:      size,
		PixelSize: px,
		Paths:     candidates,
		Detail:    "correct the font_path setting or install the font file",
		Err:       ErrNoUsableFont,
	})
}

// optionalInt reads an integer setting, treating missing or malformed
// values as 0.
func (r *Resolver) optionalInt(key string) int {
	n, err := r.settings.GetInt(key)
	if err != nil {
		return 0
	}
	return n
}
