package language

import "strings"

// Tags returned by Detect. These double as the lookup keys for every
// localized table in the knowledge base.
const (
	English   = "en"
	Hindi     = "hi"
	Bengali   = "bn"
	Tamil     = "ta"
	Telugu    = "te"
	Gujarati  = "gu"
	Kannada   = "kn"
	Malayalam = "ml"
	Punjabi   = "pa"
	Urdu      = "ur"
)

type scriptRange struct {
	lo, hi rune
	tag    string
}

// Checked in order; the first script with a hit wins. Urdu sits last
// because the Arabic block is shared with several other languages.
var scriptRanges = []scriptRange{
	{0x0900, 0x097F, Hindi},     // Devanagari
	{0x0980, 0x09FF, Bengali},   // Bengali
	{0x0B80, 0x0BFF, Tamil},     // Tamil
	{0x0C00, 0x0C7F, Telugu},    // Telugu
	{0x0A80, 0x0AFF, Gujarati},  // Gujarati
	{0x0C80, 0x0CFF, Kannada},   // Kannada
	{0x0D00, 0x0D7F, Malayalam}, // Malayalam
	{0x0A00, 0x0A7F, Punjabi},   // Gurmukhi
	{0x0600, 0x06FF, Urdu},      // Arabic
}

// Romanized Hindi markers. Whole-word matches only, so English inputs
// containing e.g. "main" as a substring do not flip the tag.
var romanHindiHints = map[string]struct{}{
	"hai":    {},
	"hain":   {},
	"mein":   {},
	"mujhe":  {},
	"mera":   {},
	"meri":   {},
	"nahi":   {},
	"kya":    {},
	"hun":    {},
	"hoon":   {},
	"bukhar": {},
	"dard":   {},
	"pet":    {},
	"sar":    {},
	"din":    {},
	"raha":   {},
	"rahi":   {},
	"bahut":  {},
	"thoda":  {},
}

// Detect returns the language tag for a chat message. It never fails:
// script ranges are tried first in fixed priority, then romanized Hindi
// word hints, and anything unresolved (including empty input) is English.
func Detect(text string) string {
	for _, r := range text {
		for _, sr := range scriptRanges {
			if r >= sr.lo && r <= sr.hi {
				return sr.tag
			}
		}
	}

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()")
		if _, ok := romanHindiHints[word]; ok {
			return Hindi
		}
	}

	return English
}

// Known reports whether tag is one the engine has localized content for.
func Known(tag string) bool {
	switch tag {
	case English, Hindi, Bengali, Tamil, Telugu, Gujarati, Kannada, Malayalam, Punjabi, Urdu:
		return true
	}
	return false
}
