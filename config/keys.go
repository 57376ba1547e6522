package config

// Setting keys read by the font engine.
const (
	KeyFontPath        = "font_path"
	KeyFontSize        = "font_size"
	KeyFontShadow      = "font_shadow"
	KeyFontShadowAlpha = "font_shadow_alpha"

	KeyFallbackFontPath        = "fallback_font_path"
	KeyFallbackFontSize        = "fallback_font_size"
	KeyFallbackFontShadow      = "fallback_font_shadow"
	KeyFallbackFontShadowAlpha = "fallback_font_shadow_alpha"

	KeyMonoFontPath        = "mono_font_path"
	KeyMonoFontSize        = "mono_font_size"
	KeyMonoFontShadow      = "mono_font_shadow"
	KeyMonoFontShadowAlpha = "mono_font_shadow_alpha"

	KeyScreenDPI  = "screen_dpi"
	KeyGUIScaling = "gui_scaling"
	KeyFreetype   = "freetype"
	KeyLanguage   = "language"
)

// Defaults returns the compiled-in default of every key the font engine reads.
func Defaults() map[string]string {
	return map[string]string{
		KeyFontPath:        "fonts/Arimo-Regular.ttf",
		KeyFontSize:        "16",
		KeyFontShadow:      "1",
		KeyFontShadowAlpha: "127",

		KeyFallbackFontPath:        "fonts/DroidSansFallbackFull.ttf",
		KeyFallbackFontSize:        "15",
		KeyFallbackFontShadow:      "1",
		KeyFallbackFontShadowAlpha: "128",

		KeyMonoFontPath:        "fonts/Cousine-Regular.ttf",
		KeyMonoFontSize:        "15",
		KeyMonoFontShadow:      "0",
		KeyMonoFontShadowAlpha: "0",

		KeyScreenDPI:  "72",
		KeyGUIScaling: "1.0",
		KeyFreetype:   "true",
		KeyLanguage:   "",
	}
}
