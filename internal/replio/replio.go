// Package replio provides the REPL's line-reading front end: an
// interactive reader backed by github.com/chzyer/readline when stdin is a
// terminal, and a plain buffered reader otherwise - grounded on
// dekarrin-tunaq's internal/input package (DirectCommandReader /
// InteractiveCommandReader), generalized to pink's prompt/history needs.
package replio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// Reader reads successive lines of REPL input.
type Reader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// directReader reads from any io.Reader with no line editing, used when
// stdin is not a terminal (piped input, tests, scripting).
type directReader struct {
	r      *bufio.Reader
	prompt string
	out    io.Writer
}

func newDirectReader(r io.Reader, out io.Writer) *directReader {
	return &directReader{r: bufio.NewReader(r), out: out}
}

func (d *directReader) ReadLine() (string, error) {
	if d.prompt != "" && d.out != nil {
		fmt.Fprint(d.out, d.prompt)
	}
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *directReader) SetPrompt(p string) { d.prompt = p }
func (d *directReader) Close() error       { return nil }

// interactiveReader wraps github.com/chzyer/readline for history and
// in-line editing when connected to a real terminal.
type interactiveReader struct {
	rl *readline.Instance
}

// newInteractiveReader builds a readline-backed Reader. History is not
// backed by readline's own flat-file persistence: the caller seeds past
// lines explicitly (from the sqlite-backed store in internal/history) so
// there is a single source of truth for REPL history.
func newInteractiveReader(prompt string, historySize int, seed []string) (*interactiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    historySize,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline instance: %w", err)
	}
	for _, line := range seed {
		rl.SaveHistory(line)
	}
	return &interactiveReader{rl: rl}, nil
}

func (i *interactiveReader) ReadLine() (string, error) {
	return i.rl.Readline()
}

func (i *interactiveReader) SetPrompt(p string) { i.rl.SetPrompt(p) }
func (i *interactiveReader) Close() error       { return i.rl.Close() }

// New builds the right kind of Reader for in: interactive (readline-backed)
// when in is a TTY, direct (buffered) otherwise. historySize and seed (the
// most recent persisted lines, oldest first) are only used in the
// interactive case - the direct case relies entirely on the caller's
// sqlite-backed persistence (see internal/history).
func New(in *os.File, out io.Writer, prompt string, historySize int, seed []string) (Reader, error) {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return newInteractiveReader(prompt, historySize, seed)
	}
	return newDirectReader(in, out), nil
}
