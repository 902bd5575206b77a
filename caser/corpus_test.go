package caser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// conversionFixture is one entry of testdata/conversions.yaml.
type conversionFixture struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	From  string `yaml:"from"` // empty means default (maximal) rules
	To    string `yaml:"to"`
	Want  string `yaml:"want"`
}

type conversionCorpus struct {
	Conversions []conversionFixture `yaml:"conversions"`
}

// TestCorpus_Conversions runs every fixture in testdata/conversions.yaml.
func TestCorpus_Conversions(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "conversions.yaml"))
	require.NoError(t, err, "reading conversion corpus")

	var corpus conversionCorpus
	require.NoError(t, yaml.Unmarshal(raw, &corpus), "decoding conversion corpus")
	require.NotEmpty(t, corpus.Conversions, "corpus should not be empty")

	for _, fix := range corpus.Conversions {
		t.Run(fix.Name, func(t *testing.T) {
			to, err := Parse(fix.To)
			require.NoError(t, err, "fixture %q has invalid target case %q", fix.Name, fix.To)

			var got string
			if fix.From == "" {
				got = ToCase(fix.Input, to)
			} else {
				from, err := Parse(fix.From)
				require.NoError(t, err, "fixture %q has invalid source case %q", fix.Name, fix.From)
				got = FromCase(fix.Input, from).ToCase(to)
			}

			assert.Equal(t, fix.Want, got, "input %q", fix.Input)
		})
	}
}
