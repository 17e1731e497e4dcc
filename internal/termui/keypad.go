package termui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"sparkcalc/sparkos/calc"
)

// keyAction is one decoded key press: a calculator key, a ":" command, or quit.
type keyAction struct {
	key  calc.Key
	cmd  string
	quit bool
}

// Escape sequences sent by common terminals for the keys the calculator uses.
var escapeActions = map[string]keyAction{
	"[A":   {cmd: ":older"},
	"[B":   {cmd: ":newer"},
	"[3~":  {key: calc.KeyClear},
	"OP":   {cmd: ":angle"},
	"OQ":   {cmd: ":m+"},
	"OR":   {cmd: ":mr"},
	"OS":   {cmd: ":m-"},
	"[15~": {cmd: ":mc"},
}

// readKey decodes the next key press from raw terminal input. Unknown input yields a zero
// keyAction.
func readKey(r *bufio.Reader) (keyAction, error) {
	ch, _, err := r.ReadRune()
	if err != nil {
		return keyAction{}, err
	}
	switch ch {
	case 0x03, 0x04, 'q':
		return keyAction{quit: true}, nil
	case '\r', '\n':
		return keyAction{key: calc.KeyEquals}, nil
	case 0x7f, 0x08:
		return keyAction{key: calc.KeyBackspace}, nil
	case 'd':
		return keyAction{cmd: ":angle"}, nil
	case 0x1b:
		return readEscape(r)
	}
	if k, ok := calc.KeyForRune(ch); ok {
		return keyAction{key: k}, nil
	}
	return keyAction{}, nil
}

// readEscape reads the rest of an escape sequence. A lone Escape clears.
func readEscape(r *bufio.Reader) (keyAction, error) {
	if r.Buffered() == 0 {
		return keyAction{key: calc.KeyClear}, nil
	}
	var seq []byte
	for len(seq) < 4 {
		b, err := r.ReadByte()
		if err != nil {
			return keyAction{}, err
		}
		seq = append(seq, b)
		if act, ok := escapeActions[string(seq)]; ok {
			return act, nil
		}
		// A letter or '~' after the introducer ends the sequence.
		if len(seq) > 1 && (b == '~' || (b >= 'A' && b <= 'Z')) {
			break
		}
		if r.Buffered() == 0 {
			break
		}
	}
	return keyAction{}, nil
}

// RunKeypad reads single key presses from a terminal in raw mode until quit or EOF.
func RunKeypad(c *Calculator, in *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("keypad mode needs a terminal on stdin")
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, old)

	c.s.Refresh()
	return c.runKeys(bufio.NewReader(in))
}

func (c *Calculator) runKeys(r *bufio.Reader) error {
	for {
		act, err := readKey(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch {
		case act.quit:
			return nil
		case act.key != "":
			c.Press(act.key)
		case act.cmd != "":
			// Failed commands leave the display as is; the keypad has nowhere to print.
			_, _ = c.Exec(act.cmd)
		}
	}
}

// RawSink returns a live sink for a terminal in raw mode.
func RawSink(out io.Writer, loc calc.Locale) *Sink {
	return NewSink(crlfWriter{w: out}, loc, true)
}
