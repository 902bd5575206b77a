package caser

// ToCase converts s to the given case using the default (maximal) boundary
// rules. It never fails; input without any detectable boundary is treated as
// a single word.
func ToCase(s string, to Case) string {
	return render(segment(s, defaultRules), to)
}

// Words splits s into words using the default (maximal) boundary rules.
// It returns nil when s contains no non-delimiter runes.
func Words(s string) []string {
	return segment(s, defaultRules)
}

// FromCase declares the case s is already in and returns a Source that
// segments with that case's narrowed boundary rules once a target case is
// chosen. Nothing is segmented until [Source.ToCase] is called.
func FromCase(s string, from Case) Source {
	return Source{text: s, from: from}
}

// Source pairs a text value with its declared source case. It is an
// immutable value; the zero Source is an empty string declared as Lower.
type Source struct {
	text string
	from Case
}

// ToCase segments the text with the source case's narrowed boundary rules
// and renders the words in the given target case.
func (s Source) ToCase(to Case) string {
	return render(segment(s.text, rulesFor(s.from)), to)
}

// FromCase returns a Source with the declared source case replaced. The text
// is carried over unchanged; no segmentation happens.
func (s Source) FromCase(from Case) Source {
	return Source{text: s.text, from: from}
}
