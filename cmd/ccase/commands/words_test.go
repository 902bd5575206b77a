package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleWords_NoArgs(t *testing.T) {
	err := HandleWords([]string{})
	assert.Error(t, err)
}

func TestHandleWords_Help(t *testing.T) {
	err := HandleWords([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleWords_Success(t *testing.T) {
	assert.NoError(t, HandleWords([]string{"SuperMario64Game"}))
	assert.NoError(t, HandleWords([]string{"XMLHttpRequest", "my_snake_value"}))
	// No detectable words is not an error.
	assert.NoError(t, HandleWords([]string{"___"}))
}
