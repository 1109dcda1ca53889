package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Ask(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPrompter(strings.NewReader("first\r\nsecond\nlast"), out)

	answer, err := p.ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", answer)

	answer, err = p.ask("")
	require.NoError(t, err)
	assert.Equal(t, "second", answer)

	answer, err = p.ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.ask("> ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> > > ", out.String())
}

func TestPrompter_ConfirmEOF(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPrompter(strings.NewReader(""), out)

	assert.Equal(t, "", p.confirm("sure? "))
	assert.Equal(t, "sure? \n", out.String())
}

func TestPrompter_KeepsSurroundingSpaces(t *testing.T) {
	p := newPrompter(strings.NewReader("  y \n"), io.Discard)

	answer, err := p.ask("")
	require.NoError(t, err)
	assert.Equal(t, "  y ", answer)
}
