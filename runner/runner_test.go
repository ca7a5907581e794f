package runner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Success(t *testing.T) {
	var out, errOut bytes.Buffer
	ok := Run(`print 1 + 2;`, &out, &errOut)
	assert.True(t, ok)
	assert.Equal(t, "3\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_LexError(t *testing.T) {
	var out, errOut bytes.Buffer
	ok := Run("@", &out, &errOut)
	assert.False(t, ok)
	assert.NotEmpty(t, errOut.String())
}

func TestRun_ParseError(t *testing.T) {
	var out, errOut bytes.Buffer
	ok := Run(`var a = ;`, &out, &errOut)
	assert.False(t, ok)
	assert.NotEmpty(t, errOut.String())
}

func TestRun_RuntimeError(t *testing.T) {
	var out, errOut bytes.Buffer
	ok := Run(`print undefined_name;`, &out, &errOut)
	assert.False(t, ok)
	assert.Contains(t, errOut.String(), "undefined variable")
}

func TestRunFile_MissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	ok := RunFile("/no/such/file.rlox", &out, &errOut)
	assert.False(t, ok)
	assert.Contains(t, errOut.String(), "could not read file")
}
