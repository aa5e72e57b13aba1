package replio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectReaderReadsTrimmedLines(t *testing.T) {
	r := newDirectReader(strings.NewReader("first\nsecond\r\n"), nil)

	line, err := r.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "first", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "second", line)

	_, err = r.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestDirectReaderWritesPromptBeforeEachLine(t *testing.T) {
	var out bytes.Buffer
	r := newDirectReader(strings.NewReader("only\n"), &out)
	r.SetPrompt("pink> ")

	_, err := r.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "pink> ", out.String())
}

func TestDirectReaderCloseIsNoop(t *testing.T) {
	r := newDirectReader(strings.NewReader(""), nil)
	require.NoError(t, r.Close())
}
