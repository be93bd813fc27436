package exec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrefixWriter(&buf, "   │ ")

	_, err := w.Write([]byte("added 312 packages\nfound 0 vuln"))
	require.NoError(t, err)
	assert.Equal(t, "   │ added 312 packages\n", buf.String())

	_, err = w.Write([]byte("erabilities\n"))
	require.NoError(t, err)
	assert.Equal(t, "   │ added 312 packages\n   │ found 0 vulnerabilities\n", buf.String())
}

func TestPrefixWriter_Flush(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrefixWriter(&buf, "> ")

	n, err := w.Write([]byte("partial"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Empty(t, buf.String())

	require.NoError(t, w.Flush())
	assert.Equal(t, "> partial\n", buf.String())

	require.NoError(t, w.Flush())
	assert.Equal(t, "> partial\n", buf.String())
}

func TestPrefixWriter_EmptyLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrefixWriter(&buf, "| ")

	_, err := w.Write([]byte("a\n\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "| a\n| \n| b\n", buf.String())
}
