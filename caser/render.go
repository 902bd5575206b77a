package caser

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// renderer holds the word-fold casers for one rendering pass. x/text casers
// carry internal state and must not be shared between goroutines, so each
// render call builds its own pair. language.Und selects the locale-neutral
// Unicode case mappings.
type renderer struct {
	lower cases.Caser
	upper cases.Caser
}

// render cases each word according to the target case's pattern and joins
// the results with its delimiter. An empty word sequence renders to "".
func render(words []string, to Case) string {
	entry := to.entry()
	r := renderer{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
	}

	if entry.pattern == patternAlternating {
		return r.alternating(words, entry.delim)
	}

	cased := make([]string, len(words))
	for i, w := range words {
		cased[i] = r.word(w, entry.pattern, i)
	}
	return strings.Join(cased, entry.delim)
}

// word applies a word-local pattern. pos is the word's position in the
// sequence; only patternCamel depends on it.
func (r renderer) word(w string, p wordPattern, pos int) string {
	switch p {
	case patternUpper:
		return r.upper.String(w)
	case patternCapital:
		return r.capitalize(w)
	case patternToggle:
		return r.toggle(w)
	case patternCamel:
		if pos == 0 {
			return r.lower.String(w)
		}
		return r.capitalize(w)
	default:
		return r.lower.String(w)
	}
}

// capitalize upper cases the first rune and lower cases the rest. Casing is
// identity on non-letters, so a word like "10,000" passes through unchanged.
func (r renderer) capitalize(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return ""
	}
	return string(unicode.ToTitle(runes[0])) + r.lower.String(string(runes[1:]))
}

// toggle lower cases the first rune and upper cases the rest.
func (r renderer) toggle(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return ""
	}
	return string(unicode.ToLower(runes[0])) + r.upper.String(string(runes[1:]))
}

// alternating renders the whole word sequence with one case toggle that
// advances on letters only. The first letter of the output is lower case and
// every following letter flips, across word boundaries; digits, punctuation,
// and delimiters neither advance nor reset the toggle.
func (r renderer) alternating(words []string, delim string) string {
	var b strings.Builder
	upper := false
	for i, w := range words {
		if i > 0 {
			b.WriteString(delim)
		}
		for _, ch := range w {
			if !unicode.IsLetter(ch) {
				b.WriteRune(ch)
				continue
			}
			if upper {
				b.WriteRune(unicode.ToUpper(ch))
			} else {
				b.WriteRune(unicode.ToLower(ch))
			}
			upper = !upper
		}
	}
	return b.String()
}
