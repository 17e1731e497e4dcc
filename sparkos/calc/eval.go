package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSyntax is returned when canonical text is not valid arithmetic.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknown is returned for identifiers outside the evaluator's function set.
	ErrUnknown = errors.New("unknown identifier")
	// ErrDomain is returned when a function argument is outside its domain.
	ErrDomain = errors.New("domain error")
	// ErrNonFinite is returned when the result is infinite or NaN.
	ErrNonFinite = errors.New("non-finite result")
)

// maxFactorial is the largest n whose factorial fits in a float64.
const maxFactorial = 170

const maxDepth = 256

// builtins is the complete set of callables reachable from evaluated text.
var builtins = map[string]func(float64) (float64, error){
	"sqrt":  pure(math.Sqrt),
	"ln":    pure(math.Log),
	"log10": pure(math.Log10),
	"sin":   pure(math.Sin),
	"cos":   pure(math.Cos),
	"tan":   pure(math.Tan),
	"fact":  factorial,
}

func pure(fn func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) { return fn(x), nil }
}

func factorial(n float64) (float64, error) {
	if math.IsNaN(n) {
		return 0, fmt.Errorf("%w: factorial of NaN", ErrDomain)
	}
	n = math.Floor(n)
	if n < 0 || n > maxFactorial {
		return 0, fmt.Errorf("%w: factorial(%g) outside 0..%d", ErrDomain, n, maxFactorial)
	}
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
	}
	return r, nil
}

// Eval translates surface text under the given angle mode and evaluates it.
func Eval(text string, mode AngleMode) (float64, error) {
	return Evaluate(Translate(text, mode))
}

// Evaluate computes the value of a canonical expression. The only operations available are
// arithmetic, the fixed function set, and the constants produced by Translate; nothing else can
// be named from the input.
func Evaluate(e Expr) (float64, error) {
	p := &evaluator{toks: e.toks}
	if len(p.toks) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	v, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	if p.pos < len(p.toks) {
		return 0, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.toks[p.pos].Text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	return v, nil
}

type evaluator struct {
	toks  []Token
	pos   int
	depth int
}

func (p *evaluator) peek() TokenKind {
	if p.pos >= len(p.toks) {
		return TokInvalid
	}
	return p.toks[p.pos].Kind
}

func (p *evaluator) atEnd() bool { return p.pos >= len(p.toks) }

func (p *evaluator) unexpected() error {
	if p.atEnd() {
		return fmt.Errorf("%w: unexpected end", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected %q", ErrSyntax, p.toks[p.pos].Text)
}

func (p *evaluator) parseSum() (float64, error) {
	left, err := p.parseProduct()
	if err != nil {
		return 0, err
	}
	for !p.atEnd() && (p.peek() == TokPlus || p.peek() == TokMinus) {
		op := p.peek()
		p.pos++
		right, err := p.parseProduct()
		if err != nil {
			return 0, err
		}
		if op == TokPlus {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *evaluator) parseProduct() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for !p.atEnd() && (p.peek() == TokStar || p.peek() == TokSlash) {
		op := p.peek()
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == TokStar {
			left *= right
		} else {
			left /= right
		}
	}
	return left, nil
}

func (p *evaluator) parseUnary() (float64, error) {
	if !p.atEnd() && (p.peek() == TokPlus || p.peek() == TokMinus) {
		neg := p.peek() == TokMinus
		p.pos++
		if err := p.enter(); err != nil {
			return 0, err
		}
		x, err := p.parseUnary()
		p.depth--
		if err != nil {
			return 0, err
		}
		if neg {
			return -x, nil
		}
		return x, nil
	}
	return p.parsePower()
}

func (p *evaluator) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.atEnd() || p.peek() != TokPow {
		return base, nil
	}
	p.pos++
	if err := p.enter(); err != nil {
		return 0, err
	}
	exp, err := p.parseUnary()
	p.depth--
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *evaluator) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrSyntax, maxDepth)
	}
	return nil
}

func (p *evaluator) parseGroup() (float64, error) {
	if p.peek() != TokLParen {
		return 0, p.unexpected()
	}
	p.pos++
	if err := p.enter(); err != nil {
		return 0, err
	}
	v, err := p.parseSum()
	p.depth--
	if err != nil {
		return 0, err
	}
	if p.atEnd() || p.peek() != TokRParen {
		return 0, fmt.Errorf("%w: expected ')'", ErrSyntax)
	}
	p.pos++
	return v, nil
}

func (p *evaluator) parsePrimary() (float64, error) {
	if p.atEnd() {
		return 0, p.unexpected()
	}
	t := p.toks[p.pos]
	switch t.Kind {
	case TokNumber, TokConst:
		p.pos++
		return t.Num, nil
	case TokLParen:
		return p.parseGroup()
	case TokFunc:
		fn, ok := builtins[t.Text]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknown, t.Text)
		}
		p.pos++
		x, err := p.parseGroup()
		if err != nil {
			return 0, err
		}
		return fn(x)
	case TokIdent:
		return 0, fmt.Errorf("%w %q", ErrUnknown, t.Text)
	default:
		return 0, p.unexpected()
	}
}
