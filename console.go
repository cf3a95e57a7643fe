package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

/* ─── Conversational boundary ────────────────────────────────────────── */

// sayTag classifies a line of output so the renderer can pick the right
// emphasis. Commands never deal in colors directly — the mapping from tag
// to color lives in the terminal console alone.
type sayTag int

const (
	tagNormal sayTag = iota
	tagEmphasis
	tagWarning
)

// Console is the conversational interface between a command and its host:
// Say emits one line of output, Input blocks for one line of user text.
type Console interface {
	Say(tag sayTag, text string)
	Input(prompt string) (string, error)
}

/* ─── Terminal implementation ────────────────────────────────────────── */

// termConsole talks to a real terminal: stdin line reads, ANSI colors for
// the emphasis and warning tags. The color package already honors NO_COLOR
// and non-tty output, so plain pipes get plain text.
type termConsole struct {
	reader   *bufio.Reader
	emphasis *color.Color
	warning  *color.Color
}

func newTermConsole() *termConsole {
	return &termConsole{
		reader:   bufio.NewReader(os.Stdin),
		emphasis: color.New(color.FgYellow),
		warning:  color.New(color.FgRed),
	}
}

func (t *termConsole) Say(tag sayTag, text string) {
	switch tag {
	case tagEmphasis:
		t.emphasis.Println(text)
	case tagWarning:
		t.warning.Println(text)
	default:
		fmt.Println(text)
	}
}

// Input prints the prompt and blocks until the user submits a line.
// Returns the line with surrounding whitespace trimmed; an error means the
// input stream is gone (closed stdin) and the command should abort.
func (t *termConsole) Input(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := t.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
