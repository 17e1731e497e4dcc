package calc

import (
	"math"
	"strings"
)

// AngleMode selects how trigonometric arguments are interpreted.
type AngleMode uint8

const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	if m == Radians {
		return "RAD"
	}
	return "DEG"
}

// ParseAngleMode accepts "deg", "degrees", "rad", "radians" in any case.
func ParseAngleMode(s string) (AngleMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, true
	case "rad", "radian", "radians":
		return Radians, true
	}
	return Degrees, false
}

// Expr is translator output: a canonical token stream ready for Evaluate.
type Expr struct {
	toks []Token
}

// Tokens returns a copy of the canonical tokens.
func (e Expr) Tokens() []Token {
	out := make([]Token, len(e.toks))
	copy(out, e.toks)
	return out
}

func (e Expr) String() string {
	var b strings.Builder
	for i, t := range e.toks {
		switch t.Kind {
		case TokPlus, TokMinus, TokStar, TokSlash, TokPow:
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.Text)
			b.WriteByte(' ')
		default:
			b.WriteString(t.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

var funcNames = map[string]string{
	"√":    "sqrt",
	"sqrt": "sqrt",
	"ln":   "ln",
	"log":  "log10",
	"sin":  "sin",
	"cos":  "cos",
	"tan":  "tan",
}

// Translate rewrites calculator-surface text into canonical form. The passes run in a fixed
// order; each one only looks at the token kinds produced before it, so no pass re-matches the
// output of a later one. Translate never fails: invalid input yields an Expr that Evaluate
// rejects.
func Translate(text string, mode AngleMode) Expr {
	toks := Tokenize(text)
	toks = rewriteConstants(toks)
	toks = rewriteFuncs(toks)
	toks = insertImplicitMul(toks)
	toks = rewritePower(toks)
	if mode == Degrees {
		toks = scaleTrig(toks)
	}
	toks = rewriteFactorial(toks)
	toks = rewritePercent(toks)
	return Expr{toks: toks}
}

func rewriteConstants(toks []Token) []Token {
	for i, t := range toks {
		if t.Kind != TokIdent {
			continue
		}
		switch t.Text {
		case "π", "pi":
			toks[i] = Token{Kind: TokConst, Text: "pi", Num: math.Pi}
		case "e":
			toks[i] = Token{Kind: TokConst, Text: "e", Num: math.E}
		}
	}
	return toks
}

func rewriteFuncs(toks []Token) []Token {
	for i, t := range toks {
		if t.Kind != TokIdent || i+1 >= len(toks) || toks[i+1].Kind != TokLParen {
			continue
		}
		if name, ok := funcNames[t.Text]; ok {
			toks[i] = Token{Kind: TokFunc, Text: name}
		}
	}
	return toks
}

func endsOperand(k TokenKind) bool {
	switch k {
	case TokNumber, TokConst, TokRParen, TokBang, TokPercent:
		return true
	}
	return false
}

func startsOperand(k TokenKind) bool {
	switch k {
	case TokNumber, TokConst, TokFunc, TokLParen:
		return true
	}
	return false
}

func insertImplicitMul(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i, t := range toks {
		if i > 0 && endsOperand(toks[i-1].Kind) && startsOperand(t.Kind) {
			out = append(out, Token{Kind: TokStar, Text: "*"})
		}
		out = append(out, t)
	}
	return out
}

func rewritePower(toks []Token) []Token {
	for i, t := range toks {
		if t.Kind == TokCaret {
			toks[i] = Token{Kind: TokPow, Text: "**"}
		}
	}
	return toks
}

func isTrig(t Token) bool {
	return t.Kind == TokFunc && (t.Text == "sin" || t.Text == "cos" || t.Text == "tan")
}

// matchParen returns the index of the ')' closing the '(' at open, or -1.
func matchParen(toks []Token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case TokLParen:
			depth++
		case TokRParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// scaleTrig turns f(A) into f((A)*pi/180) for f in sin, cos, tan. The argument is the balanced
// parenthesized group, so nested calls are scaled independently.
func scaleTrig(toks []Token) []Token {
	out := make([]Token, 0, len(toks)+8)
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if !isTrig(t) || i+1 >= len(toks) || toks[i+1].Kind != TokLParen {
			out = append(out, t)
			continue
		}
		end := matchParen(toks, i+1)
		if end < 0 {
			out = append(out, t)
			continue
		}
		inner := scaleTrig(append([]Token(nil), toks[i+2:end]...))
		out = append(out, t, Token{Kind: TokLParen, Text: "("}, Token{Kind: TokLParen, Text: "("})
		out = append(out, inner...)
		out = append(out,
			Token{Kind: TokRParen, Text: ")"},
			Token{Kind: TokStar, Text: "*"},
			Token{Kind: TokConst, Text: "pi", Num: math.Pi},
			Token{Kind: TokSlash, Text: "/"},
			Token{Kind: TokNumber, Text: "180", Num: 180},
			Token{Kind: TokRParen, Text: ")"},
		)
		i = end
	}
	return out
}

func rewriteFactorial(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == TokNumber && i+1 < len(toks) && toks[i+1].Kind == TokBang {
			out = append(out,
				Token{Kind: TokFunc, Text: "fact"},
				Token{Kind: TokLParen, Text: "("},
				t,
				Token{Kind: TokRParen, Text: ")"},
			)
			i++
			continue
		}
		out = append(out, t)
	}
	return out
}

func rewritePercent(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == TokNumber && i+1 < len(toks) && toks[i+1].Kind == TokPercent {
			out = append(out,
				Token{Kind: TokLParen, Text: "("},
				t,
				Token{Kind: TokRParen, Text: ")"},
				Token{Kind: TokSlash, Text: "/"},
				Token{Kind: TokNumber, Text: "100", Num: 100},
			)
			i++
			continue
		}
		out = append(out, t)
	}
	return out
}
