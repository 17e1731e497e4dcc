package termui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"sparkcalc/sparkos/calc"
)

// ErrCommand is wrapped by failures of ":" commands.
var ErrCommand = errors.New("command")

const helpText = `keys:     0-9 . + - × * ÷ / ^ ( ) ! % π pi e sin cos tan ln log √ sqrt = C ⌫ bs
commands: :deg :rad :angle          angle mode
          :m+ :m- :mr :mc           memory
          :hist :use N :clear-hist  history (0 = newest)
          :older :newer             step through history
          :tokens EXPR              dump translated tokens
          :base N                   show N in dec/bin/oct/hex
          :bit OP A [B]             AND OR XOR NOT SHL SHR
          :conv V FROM TO           m km cm mm in ft, kg g lb oz, C F K
          :fin simple|compound P I N  interest on P at I% over N periods
          :fin pmt PV I N           loan installment
          :help :quit`

// Calculator drives one calc.Session from text input.
type Calculator struct {
	s    *calc.Session
	sink *Sink
	out  io.Writer
	// cursor is the selected history entry, newest first; -1 when none is selected.
	cursor int
}

// NewCalculator writes command output to out and renders through sink, which may be nil.
func NewCalculator(out io.Writer, sink *Sink, angle calc.AngleMode) *Calculator {
	c := &Calculator{out: out, sink: sink, cursor: -1}
	var rs calc.RenderSink
	if sink != nil {
		rs = sink
	}
	c.s = calc.NewSession(rs)
	c.s.SetAngleMode(angle)
	return c
}

func (c *Calculator) Session() *calc.Session { return c.s }

// Press applies keys in order and returns the event of the last one.
func (c *Calculator) Press(keys ...calc.Key) calc.Event {
	var ev calc.Event
	for _, k := range keys {
		c.cursor = -1
		ev = c.s.Press(k)
	}
	return ev
}

// Exec runs one line: a ":" command or a key script. quit is set by ":quit".
func (c *Calculator) Exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	if strings.HasPrefix(line, ":") {
		return c.command(line)
	}
	keys, err := ParseScript(line)
	if err != nil {
		return false, err
	}
	if ev := c.Press(keys...); ev.Err != nil {
		return false, ev.Err
	}
	return false, nil
}

// RunTape executes every line of a key script file and stops at the first failure.
func (c *Calculator) RunTape(data []byte) error {
	for i, line := range strings.Split(string(data), "\n") {
		quit, err := c.Exec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if quit {
			return nil
		}
	}
	return nil
}

func (c *Calculator) command(line string) (bool, error) {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":help", ":h":
		fmt.Fprintln(c.out, helpText)
	case ":deg":
		c.s.SetAngleMode(calc.Degrees)
	case ":rad":
		c.s.SetAngleMode(calc.Radians)
	case ":angle":
		c.s.ToggleAngleMode()
	case ":m+":
		if err := c.s.MemoryAdd(); err != nil {
			return false, fmt.Errorf("%w: memory unchanged: %v", ErrCommand, err)
		}
	case ":m-":
		if err := c.s.MemorySubtract(); err != nil {
			return false, fmt.Errorf("%w: memory unchanged: %v", ErrCommand, err)
		}
	case ":mr":
		c.cursor = -1
		c.s.MemoryRecall()
	case ":mc":
		c.s.MemoryClear()
	case ":hist":
		c.printHistory()
	case ":use":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: usage :use N", ErrCommand)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("%w: bad index %q", ErrCommand, args[0])
		}
		return false, c.selectHistory(n)
	case ":older":
		if c.cursor+1 < len(c.s.History()) {
			return false, c.selectHistory(c.cursor + 1)
		}
	case ":newer":
		if c.cursor > 0 {
			return false, c.selectHistory(c.cursor - 1)
		}
		c.cursor = -1
	case ":clear-hist":
		c.cursor = -1
		c.s.ClearHistory()
	case ":tokens":
		expr := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		if expr == "" {
			expr = c.s.Buffer()
		}
		spew.Fdump(c.out, calc.Translate(expr, c.s.AngleMode()).Tokens())
	case ":base":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: usage :base N", ErrCommand)
		}
		n, err := calc.ParseIntAuto(args[0])
		if err != nil {
			return false, err
		}
		fmt.Fprintln(c.out, calc.Bases(n))
	case ":bit":
		return false, c.bitwise(args)
	case ":conv":
		return false, c.convert(args)
	case ":fin":
		return false, c.finance(args)
	default:
		return false, fmt.Errorf("%w: unknown command %s (try :help)", ErrCommand, fields[0])
	}
	return false, nil
}

func (c *Calculator) selectHistory(i int) error {
	if !c.s.SelectHistory(i) {
		return fmt.Errorf("%w: no history entry %d", ErrCommand, i)
	}
	c.cursor = i
	return nil
}

func (c *Calculator) printHistory() {
	entries := c.s.History()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "(no history)")
		return
	}
	for i, e := range entries {
		mark := " "
		if i == c.cursor {
			mark = "*"
		}
		fmt.Fprintf(c.out, "%s%2d: %s = %s\n", mark, i, e.LHS, e.Result)
	}
}

func (c *Calculator) bitwise(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: usage :bit OP A [B]", ErrCommand)
	}
	a, err := calc.ParseIntAuto(args[1])
	if err != nil {
		return err
	}
	var b int64
	if len(args) == 3 {
		if b, err = calc.ParseIntAuto(args[2]); err != nil {
			return err
		}
	}
	res, err := calc.Bitwise(args[0], a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, res)
	return nil
}

// parseAmount reads a number typed with either decimal separator.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrCommand, s)
	}
	return v, nil
}

func (c *Calculator) convert(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage :conv V FROM TO", ErrCommand)
	}
	v, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	out, err := calc.Convert(v, args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s = %s\n", calc.FormatUnit(v, args[1]), calc.FormatUnit(out, args[2]))
	return nil
}

func (c *Calculator) finance(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: usage :fin simple|compound|pmt P I N", ErrCommand)
	}
	var nums [3]float64
	for i, a := range args[1:] {
		v, err := parseAmount(a)
		if err != nil {
			return err
		}
		nums[i] = v
	}
	p, rate, n := nums[0], nums[1], nums[2]
	switch strings.ToLower(args[0]) {
	case "simple":
		a, j := calc.SimpleInterest(p, rate, n)
		fmt.Fprintf(c.out, "A = %s  J = %s\n", calc.FormatResult(a), calc.FormatResult(j))
	case "compound":
		a, j := calc.CompoundInterest(p, rate, n)
		fmt.Fprintf(c.out, "A = %s  J = %s\n", calc.FormatResult(a), calc.FormatResult(j))
	case "pmt":
		pmt, err := calc.Payment(p, rate, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "PMT = %s\n", calc.FormatResult(pmt))
	default:
		return fmt.Errorf("%w: unknown :fin mode %s", ErrCommand, args[0])
	}
	return nil
}
