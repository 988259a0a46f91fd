// Package i18n provides the localized message printer used for prompts and
// table labels.
//
// Call sites pass English format strings; the catalog maps them to other
// languages and falls back to the English text when no translation exists.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var (
	matcher = language.NewMatcher(supported)
	builder = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, t := range simplifiedChinese {
		// SetString only fails on malformed tags; the tag here is a constant.
		_ = b.SetString(language.SimplifiedChinese, t.key, t.value)
	}
	return b
}

// Locale formats user-facing text in one language.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Locale for the requested language ("en", "zh", "zh-CN", ...).
// Unknown or empty values fall back to English.
func New(lang string) *Locale {
	tag := language.English
	if trimmed := strings.TrimSpace(lang); trimmed != "" {
		if parsed, err := language.Parse(trimmed); err == nil {
			_, idx, confidence := matcher.Match(parsed)
			if confidence != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Locale{tag: tag, printer: message.NewPrinter(tag, message.Catalog(builder))}
}

// Default returns the English locale.
func Default() *Locale {
	return New("en")
}

// Tag reports the resolved language.
func (l *Locale) Tag() language.Tag {
	if l == nil {
		return language.English
	}
	return l.tag
}

// Sprintf formats a message in the locale's language.
func (l *Locale) Sprintf(format string, args ...any) string {
	if l == nil {
		l = Default()
	}
	return l.printer.Sprintf(format, args...)
}

// YesNo renders a boolean as a localized yes/no.
func (l *Locale) YesNo(value bool) string {
	if value {
		return l.Sprintf("yes")
	}
	return l.Sprintf("no")
}

// Supported reports whether lang resolves to a non-fallback language.
func Supported(lang string) bool {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return false
	}
	parsed, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, _, confidence := matcher.Match(parsed)
	return confidence != language.No
}
