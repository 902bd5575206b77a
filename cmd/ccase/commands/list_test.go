package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleList(t *testing.T) {
	assert.NoError(t, HandleList(nil))
}

func TestHandleList_Help(t *testing.T) {
	assert.NoError(t, HandleList([]string{"--help"}))
}
