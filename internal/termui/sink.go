package termui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"

	"sparkcalc/sparkos/calc"
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Sink is a calc.RenderSink for terminals. A live sink redraws the display block in place on
// every state change; a plain sink keeps the latest state and prints one line per Flush.
type Sink struct {
	loc     calc.Locale
	out     io.Writer
	live    *uilive.Writer
	history int

	last calc.State
	seen bool
}

// NewSink writes to w. live selects in-place redraws and should only be set for terminals.
func NewSink(w io.Writer, loc calc.Locale, live bool) *Sink {
	s := &Sink{loc: loc, out: w}
	if live {
		s.live = uilive.New()
		s.live.Out = w
	}
	return s
}

// ShowHistory adds up to n history entries under the live display block.
func (s *Sink) ShowHistory(n int) { s.history = n }

func (s *Sink) Render(st calc.State) {
	s.last = st
	s.seen = true
	if s.live == nil {
		return
	}
	fmt.Fprint(s.live, Block(st, s.loc))
	for i, e := range st.History {
		if i >= s.history {
			break
		}
		fmt.Fprintf(s.live, "  %s = %s\n", calc.LocalizeExpr(e.LHS, s.loc), calc.Localize(e.Result, s.loc))
	}
	_ = s.live.Flush()
}

// Flush prints the latest state of a plain sink. Live sinks are already current.
func (s *Sink) Flush() {
	if s.live != nil || !s.seen {
		return
	}
	fmt.Fprintln(s.out, Line(s.last, s.loc))
}

// Block renders st as the three-line calculator display.
func Block(st calc.State, loc calc.Locale) string {
	var b strings.Builder
	b.WriteString("[" + st.Angle.String() + "]")
	if st.MemoryIndicator != "" {
		b.WriteString(" " + calc.LocalizeExpr(st.MemoryIndicator, loc))
	}
	b.WriteByte('\n')
	b.WriteString("  " + calc.LocalizeExpr(st.Expr, loc) + "\n")
	b.WriteString("> " + calc.Localize(st.Buffer, loc) + "\n")
	return b.String()
}

// Line renders st on one line: mode, pending expression, buffer, memory.
func Line(st calc.State, loc calc.Locale) string {
	parts := []string{st.Angle.String()}
	if st.Expr != "" {
		parts = append(parts, calc.LocalizeExpr(st.Expr, loc))
	}
	parts = append(parts, calc.Localize(st.Buffer, loc))
	if st.MemoryIndicator != "" {
		parts = append(parts, calc.LocalizeExpr(st.MemoryIndicator, loc))
	}
	return strings.Join(parts, " | ")
}

// crlfWriter turns "\n" into "\r\n" for terminals in raw mode.
type crlfWriter struct{ w io.Writer }

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(c.w, strings.ReplaceAll(string(p), "\n", "\r\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}
