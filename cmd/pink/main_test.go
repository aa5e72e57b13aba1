package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcgru/pink/internal/engine"
	"github.com/mcgru/pink/internal/resolver"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestEvalDebugListsEveryReachableExpressionOnce(t *testing.T) {
	sources := resolver.NewMapResolver(map[string]string{
		"main": "domain { 0 }\nreserve { s, +, (, ) }\n\ns ( x... ) + y... => s ( x... + y... ) ;\n0 + x... => x... ;\n",
	})
	e, err := engine.Load(sources, "main")
	require.NoError(t, err)

	expr, err := e.ParseExpression("s ( 0 ) + 0")
	require.NoError(t, err)

	out := captureStdout(t, func() { evalDebug(e, expr) })
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// The starting expression, at least one intermediate rewrite, and the
	// canonical minimum must each appear - a map-aliasing bug previously
	// made every entry but the first vanish from this listing.
	require.Contains(t, out, "s ( 0 ) + 0")
	require.Contains(t, out, "s ( 0 + 0 )")
	require.Contains(t, out, "states visited")
	require.Equal(t, "s ( 0 )", lines[len(lines)-1])
	require.Greater(t, len(lines), 2)
}
