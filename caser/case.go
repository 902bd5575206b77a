package caser

import (
	"fmt"
	"strings"
)

// Case identifies a naming convention. Each case fixes two facts: the
// delimiter written between words and the casing pattern applied to each
// word. The set of cases is closed; use [Cases] to enumerate it.
type Case int

const (
	// Lower is lower case words separated by spaces.
	// Example: "my variable name"
	Lower Case = iota

	// Upper is upper case words separated by spaces.
	// Example: "MY VARIABLE NAME"
	Upper

	// Title is capitalized words separated by spaces.
	// Example: "My Variable Name"
	Title

	// Toggle is words separated by spaces with every letter except the
	// first of each word upper case.
	// Example: "mY vARIABLE nAME"
	Toggle

	// Camel is capitalized words concatenated together, with the first
	// word lower case.
	// Example: "myVariableName"
	Camel

	// Pascal is capitalized words concatenated together.
	// Example: "MyVariableName"
	Pascal

	// UpperCamel is an alternate name for the same rendering as Pascal,
	// kept as a distinct variant.
	// Example: "MyVariableName"
	UpperCamel

	// Snake is lower case words joined with underscores.
	// Example: "my_variable_name"
	Snake

	// ScreamingSnake is upper case words joined with underscores.
	// Example: "MY_VARIABLE_NAME"
	ScreamingSnake

	// Kebab is lower case words joined with hyphens.
	// Example: "my-variable-name"
	Kebab

	// Cobol is upper case words joined with hyphens.
	// Example: "MY-VARIABLE-NAME"
	Cobol

	// Train is capitalized words joined with hyphens.
	// Example: "My-Variable-Name"
	Train

	// Alternating is words separated by spaces with letters alternating
	// between lower and upper case across the whole string, starting lower.
	// Example: "mY vArIaBlE nAmE"
	Alternating
)

// wordPattern is the per-word casing rule a case applies during rendering.
type wordPattern int

const (
	// patternLower lower cases every letter.
	patternLower wordPattern = iota
	// patternUpper upper cases every letter.
	patternUpper
	// patternCapital upper cases the first rune and lower cases the rest.
	patternCapital
	// patternToggle lower cases the first rune and upper cases the rest.
	patternToggle
	// patternCamel renders the first word with patternLower and every
	// later word with patternCapital.
	patternCamel
	// patternAlternating alternates letter casing across the entire word
	// sequence, ignoring word boundaries.
	patternAlternating
)

// caseEntry holds the immutable facts for one Case variant.
type caseEntry struct {
	name    string
	delim   string
	pattern wordPattern
}

// caseTable is the single source of truth for every Case variant. Keep it
// exhaustive: every constant above must have exactly one entry.
var caseTable = [...]caseEntry{
	Lower:          {name: "lower", delim: " ", pattern: patternLower},
	Upper:          {name: "upper", delim: " ", pattern: patternUpper},
	Title:          {name: "title", delim: " ", pattern: patternCapital},
	Toggle:         {name: "toggle", delim: " ", pattern: patternToggle},
	Camel:          {name: "camel", delim: "", pattern: patternCamel},
	Pascal:         {name: "pascal", delim: "", pattern: patternCapital},
	UpperCamel:     {name: "upper-camel", delim: "", pattern: patternCapital},
	Snake:          {name: "snake", delim: "_", pattern: patternLower},
	ScreamingSnake: {name: "screaming-snake", delim: "_", pattern: patternUpper},
	Kebab:          {name: "kebab", delim: "-", pattern: patternLower},
	Cobol:          {name: "cobol", delim: "-", pattern: patternUpper},
	Train:          {name: "train", delim: "-", pattern: patternCapital},
	Alternating:    {name: "alternating", delim: " ", pattern: patternAlternating},
}

// Cases returns every Case variant in declaration order. The returned slice
// is freshly allocated; callers may modify it.
func Cases() []Case {
	all := make([]Case, len(caseTable))
	for i := range caseTable {
		all[i] = Case(i)
	}
	return all
}

// valid reports whether c has an entry in the case table.
func (c Case) valid() bool {
	return c >= 0 && int(c) < len(caseTable)
}

// entry returns the table entry for c. Out-of-range values fall back to the
// Lower entry so that conversion stays total even for a garbage Case.
func (c Case) entry() caseEntry {
	if !c.valid() {
		return caseTable[Lower]
	}
	return caseTable[c]
}

// String returns the case's name, e.g. "snake" or "screaming-snake".
func (c Case) String() string {
	if !c.valid() {
		return fmt.Sprintf("Case(%d)", int(c))
	}
	return caseTable[c].name
}

// Delimiter returns the literal text the case writes between words. It is
// empty for the compact cases (Camel, Pascal, UpperCamel).
func (c Case) Delimiter() string {
	return c.entry().delim
}

// Parse resolves a case name to its Case variant. Matching is
// case-insensitive and ignores hyphens, underscores, and spaces, so
// "screaming-snake", "SCREAMING_SNAKE", and "ScreamingSnake" all resolve to
// ScreamingSnake. Parse is intended for user-facing surfaces such as the
// ccase command; the conversion path itself never fails.
func Parse(name string) (Case, error) {
	want := normalizeCaseName(name)
	for i, entry := range caseTable {
		if normalizeCaseName(entry.name) == want {
			return Case(i), nil
		}
	}
	return 0, fmt.Errorf("unknown case %q (valid cases: %s)", name, strings.Join(caseNames(), ", "))
}

// caseNames returns the display name of every variant in declaration order.
func caseNames() []string {
	names := make([]string, len(caseTable))
	for i, entry := range caseTable {
		names[i] = entry.name
	}
	return names
}

func normalizeCaseName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r == '-' || r == '_' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
