// Package termui is the terminal front end of the calculator: key scripts, a line REPL, a raw
// keypad mode, a file watch mode, and the render sinks they share.
package termui

import (
	"errors"
	"fmt"
	"unicode"

	"sparkcalc/sparkos/calc"
)

// ErrScript is wrapped by key script parse failures.
var ErrScript = errors.New("script")

// ParseScript splits a key script into key presses. Digits and symbols are one key each, runs
// of ASCII letters name one key ("sin", "sqrt", "pi", "C"), and whitespace only separates.
//
//	ParseScript("12×3=")      // 1 2 × 3 =
//	ParseScript("30 sin")     // 3 0 sin
//	ParseScript("2**8 =")     // 2 ^ 8 =
func ParseScript(s string) ([]calc.Key, error) {
	var keys []calc.Key
	rs := []rune(s)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isASCIILetter(r):
			j := i
			for j < len(rs) && isASCIILetter(rs[j]) {
				j++
			}
			word := string(rs[i:j])
			k, ok := calc.ParseKey(word)
			if !ok {
				return nil, fmt.Errorf("%w: unknown key %q at %d", ErrScript, word, i)
			}
			keys = append(keys, k)
			i = j
		case r == '*' && i+1 < len(rs) && rs[i+1] == '*':
			keys = append(keys, calc.KeyPow)
			i += 2
		default:
			k, ok := calc.ParseKey(string(r))
			if !ok {
				return nil, fmt.Errorf("%w: unknown key %q at %d", ErrScript, r, i)
			}
			keys = append(keys, k)
			i++
		}
	}
	return keys, nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
