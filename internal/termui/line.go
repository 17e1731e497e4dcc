package termui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

const prompt = "calc> "

// RunLine runs the line REPL on the controlling terminal. Each line is a key script or a ":"
// command; the display line is printed after every input. historyPath may be empty.
func RunLine(c *Calculator, historyPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(c.out, "sparkcalc (:help for keys and commands, :quit to exit)")
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		quit, err := c.Exec(line)
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if c.sink != nil {
			c.sink.Flush()
		}
	}
}
