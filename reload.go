package fontengine

import (
	"strconv"
	"strings"

	"github.com/gogpu/fontengine/config"
	"github.com/gogpu/fontengine/locale"
)

// readSettings recomputes the active mode and default sizes, drops every
// cached font and reloads the default font into the skin.
func (r *Resolver) readSettings() {
	if r.outline != nil && r.settings.GetBool(config.KeyFreetype) {
		r.defaults[ModeStandard] = r.sizeSetting(config.KeyFontSize)
		r.defaults[ModeFallback] = r.sizeSetting(config.KeyFallbackFontSize)
		r.defaults[ModeMono] = r.sizeSetting(config.KeyMonoFontSize)

		r.active = ModeStandard
		if locale.NeedsFallbackFont(r.language()) {
			r.active = ModeFallback
		}
	} else {
		r.active = ModeSimple
	}

	r.defaults[ModeSimple] = r.sizeSetting(config.KeyFontSize)
	r.defaults[ModeSimpleMono] = r.sizeSetting(config.KeyMonoFontSize)

	r.flush()
	r.updateSkin()
}

// sizeSetting reads a font size, falling back to the key's default and
// then to DefaultFontSize when the value does not parse.
func (r *Resolver) sizeSetting(key string) uint32 {
	n, err := r.settings.GetInt(key)
	if err == nil && validSize(n) {
		return uint32(n)
	}
	r.log().Warn("invalid font size setting", "key", key, "value", r.settings.Get(key), "err", err)

	if d, err := strconv.Atoi(strings.TrimSpace(r.settings.Default(key))); err == nil && validSize(d) {
		return uint32(d)
	}
	return DefaultFontSize
}

func validSize(n int) bool {
	return n >= 0 && uint64(n) < uint64(SizeUnspecified)
}

// updateSkin creates the default font of the active mode and makes it
// the skin's font. Only this font is created eagerly; all others wait for
// their first request.
func (r *Resolver) updateSkin() {
	f := r.GetFont(SizeUnspecified, RequestUnspecified)
	if f != nil {
		r.skin.SetFont(f)
		r.skinFont = f
		r.releaseRetired()
	} else {
		r.log().Error("default font required for the current screen configuration was not found or has an invalid format; keeping the skin's font",
			"font_path", r.settings.Get(config.KeyFontPath),
			"mode", r.active)
	}

	sf := r.skin.Font()
	if sf == nil {
		r.raise(&FatalError{Op: "skin", Mode: r.active, Err: ErrNoSkinFont})
	}
	r.log().Info("skin font", "font", sf.Name(), "text_height", sf.Dimension("Hello, world!").Y)
}

// watchSettings subscribes to the keys that affect font resolution. The
// main and fallback key families are watched only when a mode reading
// them is active at construction.
func (r *Resolver) watchSettings() {
	var keys []string
	switch r.active {
	case ModeStandard, ModeSimple:
		keys = append(keys, config.KeyFontSize, config.KeyFontPath, config.KeyFontShadow, config.KeyFontShadowAlpha)
	case ModeFallback:
		keys = append(keys, config.KeyFallbackFontSize, config.KeyFallbackFontPath,
			config.KeyFallbackFontShadow, config.KeyFallbackFontShadowAlpha)
	}
	keys = append(keys,
		config.KeyMonoFontPath,
		config.KeyMonoFontSize,
		config.KeyScreenDPI,
		config.KeyGUIScaling,
		config.KeyFreetype,
		config.KeyLanguage,
	)

	r.settings.Watch(r.settingChanged, keys...)
}

// settingChanged is the change callback for every watched key.
func (r *Resolver) settingChanged(key string) {
	if r.closed {
		return
	}
	r.log().Info("font setting changed, reloading fonts", "key", key)
	r.readSettings()
}
