// Package locale decides whether the client's language needs the
// fallback font.
//
// The main and monospace fonts cover Latin, Greek and Cyrillic. Languages
// written in other scripts are rendered with the fallback font, which
// usually carries CJK, Arabic, Hebrew and Indic coverage.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// fallbackScripts lists the scripts the main font does not cover.
var fallbackScripts = map[language.Script]bool{
	language.MustParseScript("Arab"): true,
	language.MustParseScript("Beng"): true,
	language.MustParseScript("Deva"): true,
	language.MustParseScript("Ethi"): true,
	language.MustParseScript("Geor"): true,
	language.MustParseScript("Gujr"): true,
	language.MustParseScript("Guru"): true,
	language.MustParseScript("Hans"): true,
	language.MustParseScript("Hant"): true,
	language.MustParseScript("Hebr"): true,
	language.MustParseScript("Jpan"): true,
	language.MustParseScript("Khmr"): true,
	language.MustParseScript("Knda"): true,
	language.MustParseScript("Kore"): true,
	language.MustParseScript("Mlym"): true,
	language.MustParseScript("Mymr"): true,
	language.MustParseScript("Sinh"): true,
	language.MustParseScript("Taml"): true,
	language.MustParseScript("Telu"): true,
	language.MustParseScript("Thai"): true,
}

// NeedsFallbackFont reports whether text in the language identified by
// tag (BCP 47 or POSIX form, e.g. "ja", "zh-TW", "ar_EG.UTF-8") needs the
// fallback font. Empty or unparsable tags report false.
func NeedsFallbackFont(tag string) bool {
	t, ok := Parse(tag)
	if !ok {
		return false
	}
	script, _ := t.Script()
	return fallbackScripts[script]
}

// rtlScripts lists scripts written right to left.
var rtlScripts = map[language.Script]bool{
	language.MustParseScript("Adlm"): true,
	language.MustParseScript("Arab"): true,
	language.MustParseScript("Hebr"): true,
	language.MustParseScript("Nkoo"): true,
	language.MustParseScript("Syrc"): true,
	language.MustParseScript("Thaa"): true,
}

// RightToLeft reports whether the language identified by tag is written
// right to left. Empty or unparsable tags report false.
func RightToLeft(tag string) bool {
	t, ok := Parse(tag)
	if !ok {
		return false
	}
	script, _ := t.Script()
	return rtlScripts[script]
}

// Parse converts a BCP 47 or POSIX locale string into a language tag.
// The POSIX codeset and modifier ("en_US.UTF-8@euro") are dropped.
func Parse(tag string) (language.Tag, bool) {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "C" || tag == "POSIX" {
		return language.Und, false
	}

	t, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return t, true
}

// FromEnvironment returns the user's language from the usual POSIX
// variables, in priority order LANGUAGE, LC_ALL, LC_MESSAGES, LANG.
// LANGUAGE may hold a colon separated list; its first entry is used.
func FromEnvironment(getenv func(string) string) string {
	for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(key)
		if key == "LANGUAGE" {
			v, _, _ = strings.Cut(v, ":")
		}
		if _, ok := Parse(v); ok {
			return v
		}
	}
	return ""
}
