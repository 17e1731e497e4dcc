package calc

import (
	"strconv"
	"strings"
	"unicode"
)

// TokenKind classifies a token of surface or canonical text.
type TokenKind uint8

const (
	TokInvalid TokenKind = iota
	TokNumber
	TokIdent
	TokConst
	TokFunc
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokCaret
	TokPow
	TokLParen
	TokRParen
	TokComma
	TokBang
	TokPercent
)

func (k TokenKind) String() string {
	switch k {
	case TokNumber:
		return "number"
	case TokIdent:
		return "ident"
	case TokConst:
		return "const"
	case TokFunc:
		return "func"
	case TokPlus:
		return "+"
	case TokMinus:
		return "-"
	case TokStar:
		return "*"
	case TokSlash:
		return "/"
	case TokCaret:
		return "^"
	case TokPow:
		return "**"
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	case TokComma:
		return ","
	case TokBang:
		return "!"
	case TokPercent:
		return "%"
	default:
		return "invalid"
	}
}

// Token is one lexical unit. Num is set for TokNumber and TokConst.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64
}

// localize maps the display glyphs to their ASCII operators and turns the first decimal comma
// into a decimal point. Later commas are kept and end up as TokComma.
func localize(s string) string {
	s = strings.NewReplacer("÷", "/", "×", "*", "−", "-").Replace(s)
	return strings.Replace(s, ",", ".", 1)
}

// Tokenize splits surface text into tokens. It never fails: characters that do not start a
// token become TokInvalid tokens.
func Tokenize(s string) []Token {
	s = localize(s)
	var out []Token
	rs := []rune(s)
	for i := 0; i < len(rs); {
		r := rs[i]
		if unicode.IsSpace(r) {
			i++
			continue
		}

		if kind, ok := singleRuneToken(r); ok {
			out = append(out, Token{Kind: kind, Text: string(r)})
			i++
			continue
		}

		if r == '√' {
			out = append(out, Token{Kind: TokIdent, Text: "√"})
			i++
			continue
		}

		if r == '.' || isDigit(r) {
			j := scanNumber(rs, i)
			if j == i {
				out = append(out, Token{Kind: TokInvalid, Text: string(r)})
				i++
				continue
			}
			txt := string(rs[i:j])
			n, err := strconv.ParseFloat(txt, 64)
			if err != nil {
				out = append(out, Token{Kind: TokInvalid, Text: txt})
			} else {
				out = append(out, Token{Kind: TokNumber, Text: txt, Num: n})
			}
			i = j
			continue
		}

		if isIdentStart(r) {
			j := i + 1
			for j < len(rs) && isIdentContinue(rs[j]) {
				j++
			}
			out = append(out, Token{Kind: TokIdent, Text: string(rs[i:j])})
			i = j
			continue
		}

		out = append(out, Token{Kind: TokInvalid, Text: string(r)})
		i++
	}
	return out
}

func singleRuneToken(r rune) (TokenKind, bool) {
	switch r {
	case '+':
		return TokPlus, true
	case '-':
		return TokMinus, true
	case '*':
		return TokStar, true
	case '/':
		return TokSlash, true
	case '^':
		return TokCaret, true
	case '(':
		return TokLParen, true
	case ')':
		return TokRParen, true
	case ',':
		return TokComma, true
	case '!':
		return TokBang, true
	case '%':
		return TokPercent, true
	}
	return TokInvalid, false
}

// scanNumber returns the end of the numeric literal starting at i: digits, an optional
// fraction, and an optional exponent. A bare "." is not a number.
func scanNumber(rs []rune, i int) int {
	start := i
	digits := 0
	for i < len(rs) && isDigit(rs[i]) {
		i++
		digits++
	}
	if i < len(rs) && rs[i] == '.' {
		i++
		for i < len(rs) && isDigit(rs[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return start
	}
	if i < len(rs) && (rs[i] == 'e' || rs[i] == 'E') {
		j := i + 1
		if j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
			j++
		}
		k := j
		for k < len(rs) && isDigit(rs[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
