package calc

import "strings"

// State is a snapshot of everything a renderer needs.
type State struct {
	Buffer          string
	Expr            string
	Memory          float64
	MemoryIndicator string
	Angle           AngleMode
	History         []Entry
	// Err is the failure of the last evaluation when Buffer holds ErrorText.
	Err error
}

// RenderSink receives a State after every transition.
type RenderSink interface {
	Render(State)
}

// RenderFunc adapts a function to RenderSink.
type RenderFunc func(State)

func (f RenderFunc) Render(s State) { f(s) }

// Event reports what a key press did.
type Event struct {
	Key Key
	// Evaluated is set when the press ran the evaluator.
	Evaluated bool
	Input     string
	Output    string
	Err       error
}

// Session is the calculator input state machine. It owns the operand being typed (the buffer),
// the pending left-hand side (the expression), the angle mode, memory, and history.
//
// A Session is not safe for concurrent use; one owner handles each event to completion.
type Session struct {
	buffer string
	expr   string
	// fresh marks a placeholder buffer the user has not typed into.
	fresh bool

	angle AngleMode
	mem   Memory
	hist  *History
	err   error

	sink RenderSink
}

// NewSession returns a session in its initial state (placeholder buffer, empty expression,
// degrees, zero memory, empty history). sink may be nil.
func NewSession(sink RenderSink) *Session {
	return &Session{
		buffer: Placeholder,
		fresh:  true,
		angle:  Degrees,
		hist:   NewHistory(HistoryCapacity),
		sink:   sink,
	}
}

// SetSink replaces the render sink.
func (s *Session) SetSink(sink RenderSink) { s.sink = sink }

func (s *Session) Buffer() string       { return s.buffer }
func (s *Session) Expr() string         { return s.expr }
func (s *Session) AngleMode() AngleMode { return s.angle }
func (s *Session) Memory() float64      { return s.mem.Value() }
func (s *Session) History() []Entry     { return s.hist.Entries() }

// State returns the current snapshot.
func (s *Session) State() State {
	return State{
		Buffer:          s.buffer,
		Expr:            s.expr,
		Memory:          s.mem.Value(),
		MemoryIndicator: s.mem.Indicator(),
		Angle:           s.angle,
		History:         s.hist.Entries(),
		Err:             s.err,
	}
}

// Refresh pushes the current state to the sink without changing it.
func (s *Session) Refresh() { s.render() }

func (s *Session) render() {
	if s.sink != nil {
		s.sink.Render(s.State())
	}
}

// Press applies one key. Keys outside the vocabulary are ignored and do not render.
func (s *Session) Press(k Key) Event {
	ev := Event{Key: k}
	switch {
	case k.IsDigit():
		s.typeDigit(string(k))
	case k == KeyDecimal:
		s.typeDecimal()
	case k.isBinaryOp(), k == KeyRParen, k == KeyPow:
		s.commit(string(k), false)
	case k == KeyPi, k == KeyE, k == KeyLParen:
		s.commit(string(k), true)
	case k == KeyEquals:
		ev = s.equals()
	case k == KeyClear:
		s.clear()
	case k == KeyBackspace:
		s.backspace()
	case k.isFunc():
		ev = s.apply(string(k) + "(" + s.buffer + ")")
	case k == KeyFact, k == KeyPercent:
		ev = s.apply(s.buffer + string(k))
	default:
		return ev
	}
	ev.Key = k
	ev.Output = s.buffer
	s.render()
	return ev
}

func (s *Session) setBuffer(v string, fresh bool) {
	s.buffer = v
	s.fresh = fresh
	if v != ErrorText {
		s.err = nil
	}
}

func (s *Session) typeDigit(d string) {
	if s.buffer == Placeholder || s.buffer == ErrorText {
		s.setBuffer(d, false)
		return
	}
	s.setBuffer(s.buffer+d, false)
}

func (s *Session) typeDecimal() {
	switch {
	case s.buffer == ErrorText:
		s.setBuffer(Placeholder+".", false)
	case !strings.Contains(s.buffer, "."):
		s.setBuffer(s.buffer+".", false)
	}
}

func join(parts ...string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}

// endsWithOperand reports whether expr already ends in something that needs no further operand.
func endsWithOperand(expr string) bool {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return false
	}
	switch fields[len(fields)-1] {
	case string(KeyRParen), string(KeyPi), string(KeyE):
		return true
	}
	return false
}

// skipBuffer reports whether an untouched placeholder should stay out of the expression.
func (s *Session) skipBuffer(opensOperand bool) bool {
	return s.fresh && s.buffer == Placeholder && (opensOperand || endsWithOperand(s.expr))
}

// commit moves the buffer into the expression followed by sym.
func (s *Session) commit(sym string, opensOperand bool) {
	if s.buffer == ErrorText {
		s.setBuffer(Placeholder, true)
	}
	if !s.skipBuffer(opensOperand) {
		s.expr = join(s.expr, s.buffer)
	}
	s.expr = join(s.expr, sym)
	s.setBuffer(Placeholder, true)
}

func (s *Session) equals() Event {
	lhs := s.expr
	if !s.skipBuffer(false) {
		lhs = join(s.expr, s.buffer)
	}
	ev := s.evaluate(lhs)
	if ev.Err == nil {
		s.hist.Push(lhs, s.buffer)
	}
	s.expr = ""
	return ev
}

// apply evaluates text and replaces the buffer with the result; the expression is untouched.
func (s *Session) apply(text string) Event {
	return s.evaluate(text)
}

func (s *Session) evaluate(text string) Event {
	ev := Event{Evaluated: true, Input: text}
	v, err := Eval(text, s.angle)
	if err != nil {
		s.setBuffer(ErrorText, false)
		s.err = err
		ev.Err = err
		return ev
	}
	s.setBuffer(FormatResult(v), false)
	return ev
}

func (s *Session) clear() {
	s.setBuffer(Placeholder, true)
	s.expr = ""
}

func (s *Session) backspace() {
	if s.buffer == ErrorText {
		s.setBuffer(Placeholder, true)
		return
	}
	rs := []rune(s.buffer)
	if len(rs) > 0 {
		rs = rs[:len(rs)-1]
	}
	if v := string(rs); v != "" && v != "-" {
		s.setBuffer(v, false)
		return
	}
	s.setBuffer(Placeholder, true)
}

// SetBuffer overwrites the buffer without validation (history pick, drop, paste).
func (s *Session) SetBuffer(v string) {
	if v == "" {
		s.setBuffer(Placeholder, true)
	} else {
		s.setBuffer(v, false)
	}
	s.render()
}

// SetAngleMode changes how later trigonometric evaluations read their argument.
func (s *Session) SetAngleMode(m AngleMode) {
	s.angle = m
	s.render()
}

// ToggleAngleMode flips between degrees and radians.
func (s *Session) ToggleAngleMode() {
	if s.angle == Degrees {
		s.SetAngleMode(Radians)
		return
	}
	s.SetAngleMode(Degrees)
}

func (s *Session) MemoryClear() {
	s.mem.Clear()
	s.render()
}

// MemoryRecall overwrites the buffer with the formatted memory value.
func (s *Session) MemoryRecall() {
	s.setBuffer(FormatResult(s.mem.Value()), false)
	s.render()
}

// MemoryAdd adds the current buffer's value to memory. An invalid buffer leaves memory as is.
func (s *Session) MemoryAdd() error {
	v, err := Eval(s.buffer, s.angle)
	if err == nil {
		s.mem.Add(v)
	}
	s.render()
	return err
}

// MemorySubtract subtracts the current buffer's value from memory. An invalid buffer leaves
// memory as is.
func (s *Session) MemorySubtract() error {
	v, err := Eval(s.buffer, s.angle)
	if err == nil {
		s.mem.Sub(v)
	}
	s.render()
	return err
}

// SelectHistory overwrites the buffer with the result of the i-th newest entry.
func (s *Session) SelectHistory(i int) bool {
	e, ok := s.hist.At(i)
	if !ok {
		return false
	}
	s.SetBuffer(e.Result)
	return true
}

func (s *Session) ClearHistory() {
	s.hist.Clear()
	s.render()
}
