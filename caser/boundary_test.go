package caser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment_DefaultRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "delimiters only",
			input: " _- _-",
			want:  nil,
		},
		{
			name:  "single word",
			input: "word",
			want:  []string{"word"},
		},
		{
			name:  "space delimited",
			input: "two words",
			want:  []string{"two", "words"},
		},
		{
			name:  "tabs and newlines count as spaces",
			input: "one\ttwo\nthree",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "lower to upper transition",
			input: "camelCase",
			want:  []string{"camel", "Case"},
		},
		{
			name:  "acronym boundary before last upper",
			input: "XMLHttpRequest",
			want:  []string{"XML", "Http", "Request"},
		},
		{
			name:  "trailing acronym stays whole",
			input: "teamABC",
			want:  []string{"team", "ABC"},
		},
		{
			name:  "two letter acronym",
			input: "IOStream",
			want:  []string{"IO", "Stream"},
		},
		{
			name:  "letter digit transitions",
			input: "SuperMario64Game",
			want:  []string{"Super", "Mario", "64", "Game"},
		},
		{
			name:  "digit then letter",
			input: "E5150",
			want:  []string{"E", "5150"},
		},
		{
			name:  "punctuation stays in word",
			input: "10,000Days",
			want:  []string{"10,000", "Days"},
		},
		{
			name:  "punctuation never splits",
			input: "Hello, world!",
			want:  []string{"Hello,", "world!"},
		},
		{
			name:  "leading trailing and repeated delimiters",
			input: "__weird--var _name-",
			want:  []string{"weird", "var", "name"},
		},
		{
			name:  "every rule at once",
			input: "ABC-abc_abcAbc ABCAbc",
			want:  []string{"ABC", "abc", "abc", "Abc", "ABC", "Abc"},
		},
		{
			name:  "mixed delimiters",
			input: "super_mario-64 game",
			want:  []string{"super", "mario", "64", "game"},
		},
		{
			name:  "uppercase run then lowercase",
			input: "SUPERMario",
			want:  []string{"SUPER", "Mario"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segment(tt.input, defaultRules))
		})
	}
}

func TestSegment_NarrowedRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		from  Case
		want  []string
	}{
		{
			name:  "snake splits underscores only",
			input: "my-kebab_snake var",
			from:  Snake,
			want:  []string{"my-kebab", "snake var"},
		},
		{
			name:  "snake ignores capitalization",
			input: "odd_Snake_INPUT",
			from:  Snake,
			want:  []string{"odd", "Snake", "INPUT"},
		},
		{
			name:  "kebab splits hyphens only",
			input: "my-kebab_var",
			from:  Kebab,
			want:  []string{"my", "kebab_var"},
		},
		{
			name:  "train splits hyphens only",
			input: "My-Train_Var",
			from:  Train,
			want:  []string{"My", "Train_Var"},
		},
		{
			name:  "camel splits on capitalization",
			input: "myVariableName",
			from:  Camel,
			want:  []string{"my", "Variable", "Name"},
		},
		{
			name:  "camel splits acronyms",
			input: "myJSONParser",
			from:  Camel,
			want:  []string{"my", "JSON", "Parser"},
		},
		{
			name:  "camel splits digits",
			input: "myVariable22Name",
			from:  Camel,
			want:  []string{"my", "Variable", "22", "Name"},
		},
		{
			name:  "camel leaves delimiter runes in words",
			input: "not_camel input",
			from:  Camel,
			want:  []string{"not_camel input"},
		},
		{
			name:  "pascal same rules as camel",
			input: "MyVariable22Name",
			from:  Pascal,
			want:  []string{"My", "Variable", "22", "Name"},
		},
		{
			name:  "lower splits whitespace only",
			input: "my variable_name",
			from:  Lower,
			want:  []string{"my", "variable_name"},
		},
		{
			name:  "alternating splits whitespace only",
			input: "mY vArIaBlE",
			from:  Alternating,
			want:  []string{"mY", "vArIaBlE"},
		},
		{
			name:  "no boundary found yields one word",
			input: "my-kebab-var",
			from:  Snake,
			want:  []string{"my-kebab-var"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segment(tt.input, rulesFor(tt.from)))
		})
	}
}

func TestRulesFor_DisablesUnrelatedRules(t *testing.T) {
	// Delimiter-based cases must not split on case or digit changes.
	for _, c := range []Case{Snake, ScreamingSnake, Kebab, Cobol, Train} {
		t.Run(c.String(), func(t *testing.T) {
			rules := rulesFor(c)
			assert.False(t, rules.lowerUpper)
			assert.False(t, rules.acronym)
			assert.False(t, rules.letterDigit)
			assert.NotNil(t, rules.isDelim)
		})
	}

	// Compact cases must not consume any delimiter rune.
	for _, c := range []Case{Camel, Pascal, UpperCamel} {
		t.Run(c.String(), func(t *testing.T) {
			rules := rulesFor(c)
			assert.Nil(t, rules.isDelim)
			assert.True(t, rules.lowerUpper)
			assert.True(t, rules.acronym)
			assert.True(t, rules.letterDigit)
		})
	}
}
