// Package i18n provides message lookup and locale-aware date formatting.
package i18n

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is used when the requested locale is unknown.
const BaseLocale = "en-US"

// Localizer resolves message keys and formats dates for one locale.
type Localizer interface {
	T(key string) string
	FormatDate(t time.Time, timeOnly bool) string
	Locale() string
}

type localizer struct {
	tag     language.Tag
	locale  string
	def     localeDef
	printer *message.Printer
}

var (
	supported []language.Tag
	matcher   language.Matcher
	cat       catalog.Catalog
)

func init() {
	b := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))

	// base locale first so the matcher falls back to it
	names := []string{BaseLocale}
	others := make([]string, 0, len(locales))
	for name := range locales {
		if name != BaseLocale {
			others = append(others, name)
		}
	}
	sort.Strings(others)
	names = append(names, others...)

	for _, name := range names {
		tag := language.MustParse(name)
		supported = append(supported, tag)
		for key, msg := range locales[name].messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", name, key, err))
			}
		}
	}
	matcher = language.NewMatcher(supported)
	cat = b
}

// New returns a Localizer for the closest supported locale.
func New(locale string) Localizer {
	requested, err := language.Parse(locale)
	if err != nil {
		requested = language.MustParse(BaseLocale)
	}
	_, idx, _ := matcher.Match(requested)
	tag := supported[idx]
	name := tag.String()
	def, ok := locales[name]
	if !ok {
		name = BaseLocale
		def = locales[BaseLocale]
	}
	return &localizer{
		tag:     tag,
		locale:  name,
		def:     def,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Supported lists the locales with a message catalog.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// T returns the message for key, or the key itself when no message exists.
func (l *localizer) T(key string) string {
	var ref message.Reference = key
	return l.printer.Sprintf(ref)
}

// FormatDate renders the date part of t, or only hours and minutes when timeOnly is set.
func (l *localizer) FormatDate(t time.Time, timeOnly bool) string {
	if timeOnly {
		return t.Format(l.def.timeLayout)
	}
	return t.Format(l.def.dateLayout)
}

func (l *localizer) Locale() string {
	return l.locale
}
