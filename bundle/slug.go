package bundle

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SlugBuilder generates a URL/filename-safe slug for a heading, document
// title, or fragment name. Bundles may supply their own (e.g. a theme
// wanting CJK-aware transliteration); DefaultSlugBuilder is laika's own.
type SlugBuilder interface {
	Slug(title string) string
}

// defaultSlugBuilder lowercases per a fixed language's casing rules (via
// x/text/cases, which is Unicode-aware in a way a byte-wise ToLower is
// not) and replaces runs of non-alphanumeric characters with a single
// hyphen.
type defaultSlugBuilder struct {
	caser cases.Caser
}

// DefaultSlugBuilder returns laika's stock slug builder, applying tag's
// casing conventions before slugifying (e.g. Turkish dotless-I rules
// under language.Turkish).
func DefaultSlugBuilder(tag language.Tag) SlugBuilder {
	return defaultSlugBuilder{caser: cases.Lower(tag)}
}

func (b defaultSlugBuilder) Slug(title string) string {
	lowered := b.caser.String(strings.TrimSpace(title))
	var sb strings.Builder
	lastHyphen := true // swallow any leading separator
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		case r > 127 && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			// Unicode letters and digits outside ASCII survive as-is rather than being
			// dropped, so slugs for non-Latin titles stay non-empty.
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(sb.String(), "-")
}
