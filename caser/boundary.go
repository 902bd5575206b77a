package caser

import "unicode"

// ruleset is the set of enabled boundary rules for one segmentation pass.
// A rule that is disabled never fires, so a narrowed ruleset sees fewer
// boundaries than the default one, never different ones.
type ruleset struct {
	// isDelim classifies explicit delimiter runes. Delimiter runes are
	// consumed and never appear in any output word. nil disables the rule.
	isDelim func(r rune) bool

	// lowerUpper splits between a lower case letter and the upper case
	// letter that follows it ("aB").
	lowerUpper bool

	// acronym splits an upper case run of two or more letters before its
	// last letter when a lower case letter follows, so "XMLHttp" splits
	// as "XML", "Http". A trailing upper case run with no lower case
	// letter after it stays one word.
	acronym bool

	// letterDigit splits between a letter and a digit in either order.
	letterDigit bool
}

func isUnderscore(r rune) bool { return r == '_' }
func isHyphen(r rune) bool     { return r == '-' }

func isDefaultDelim(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// defaultRules is the maximal ruleset used when no source case is declared:
// every rule enabled, with space, underscore, and hyphen as delimiters.
var defaultRules = ruleset{
	isDelim:     isDefaultDelim,
	lowerUpper:  true,
	acronym:     true,
	letterDigit: true,
}

// rulesFor returns the narrowed ruleset for text declared to be in case c:
// only the boundaries that c itself writes between words. This is what makes
// a declared source more accurate than default splitting; snake-declared
// input, for example, keeps internal hyphens intact.
func rulesFor(c Case) ruleset {
	switch c {
	case Snake, ScreamingSnake:
		return ruleset{isDelim: isUnderscore}
	case Kebab, Cobol, Train:
		return ruleset{isDelim: isHyphen}
	case Camel, Pascal, UpperCamel:
		// Compact cases mark boundaries with capitalization and with
		// letter/digit transitions; they have no delimiter rune.
		return ruleset{lowerUpper: true, acronym: true, letterDigit: true}
	default:
		return ruleset{isDelim: unicode.IsSpace}
	}
}

// segment splits s into words at the boundaries enabled in rules. It scans
// the runes once, left to right, carrying the current word; each enabled rule
// is tested against the previous rune(s) of that word and the current rune.
// Empty segments from leading, trailing, or repeated delimiters are dropped,
// so segment never returns an empty word. It returns nil when s contains no
// non-delimiter runes.
func segment(s string, rules ruleset) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for _, r := range s {
		if rules.isDelim != nil && rules.isDelim(r) {
			flush()
			continue
		}

		switch {
		case rules.lowerUpper && len(cur) > 0 &&
			unicode.IsUpper(r) && unicode.IsLower(cur[len(cur)-1]):
			flush()
			cur = append(cur, r)

		case rules.acronym && len(cur) >= 2 && unicode.IsLower(r) &&
			unicode.IsUpper(cur[len(cur)-1]) && unicode.IsUpper(cur[len(cur)-2]):
			// The boundary goes before the last letter of the upper
			// case run: that letter starts the next word.
			last := cur[len(cur)-1]
			cur = cur[:len(cur)-1]
			flush()
			cur = append(cur, last, r)

		case rules.letterDigit && len(cur) > 0 &&
			(unicode.IsDigit(r) && unicode.IsLetter(cur[len(cur)-1]) ||
				unicode.IsLetter(r) && unicode.IsDigit(cur[len(cur)-1])):
			flush()
			cur = append(cur, r)

		default:
			cur = append(cur, r)
		}
	}
	flush()

	return words
}
