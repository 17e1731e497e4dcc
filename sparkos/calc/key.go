package calc

import "strings"

// Key is a logical calculator key. Physical input devices map onto this vocabulary.
type Key string

const (
	KeyDecimal   Key = "."
	KeyAdd       Key = "+"
	KeySub       Key = "-"
	KeyMul       Key = "×"
	KeyDiv       Key = "÷"
	KeyEquals    Key = "="
	KeyClear     Key = "C"
	KeyBackspace Key = "⌫"

	KeySin  Key = "sin"
	KeyCos  Key = "cos"
	KeyTan  Key = "tan"
	KeyLn   Key = "ln"
	KeyLog  Key = "log"
	KeySqrt Key = "√"
	KeyFact Key = "!"

	KeyPercent Key = "%"

	KeyPi     Key = "π"
	KeyE      Key = "e"
	KeyLParen Key = "("
	KeyRParen Key = ")"
	KeyPow    Key = "^"
)

// DigitKey returns the key for decimal digit d (0..9).
func DigitKey(d int) Key {
	if d < 0 || d > 9 {
		return ""
	}
	return Key(string(rune('0' + d)))
}

// IsDigit reports whether k is one of 0..9.
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

func (k Key) isBinaryOp() bool {
	switch k {
	case KeyAdd, KeySub, KeyMul, KeyDiv:
		return true
	}
	return false
}

func (k Key) isFunc() bool {
	switch k {
	case KeySin, KeyCos, KeyTan, KeyLn, KeyLog, KeySqrt:
		return true
	}
	return false
}

// Valid reports whether k belongs to the key vocabulary.
func (k Key) Valid() bool {
	if k.IsDigit() || k.isBinaryOp() || k.isFunc() {
		return true
	}
	switch k {
	case KeyDecimal, KeyEquals, KeyClear, KeyBackspace, KeyFact, KeyPercent,
		KeyPi, KeyE, KeyLParen, KeyRParen, KeyPow:
		return true
	}
	return false
}

var keyAliases = map[string]Key{
	",":         KeyDecimal,
	"*":         KeyMul,
	"x":         KeyMul,
	"/":         KeyDiv,
	"−":         KeySub,
	"sqrt":      KeySqrt,
	"pi":        KeyPi,
	"c":         KeyClear,
	"clear":     KeyClear,
	"ac":        KeyClear,
	"back":      KeyBackspace,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"enter":     KeyEquals,
	"**":        KeyPow,
}

// ParseKey maps a key name to a Key. It accepts the surface spelling ("×", "√", "π") and
// ASCII aliases ("*", "sqrt", "pi", "enter"). Matching of aliases is case-insensitive.
func ParseKey(s string) (Key, bool) {
	if s == "" {
		return "", false
	}
	if k := Key(s); k.Valid() {
		return k, true
	}
	if k, ok := keyAliases[strings.ToLower(s)]; ok {
		return k, true
	}
	if k := Key(strings.ToLower(s)); k.Valid() {
		return k, true
	}
	return "", false
}

// runeKeys maps typed characters to keys for keyboards without calculator legends.
var runeKeys = map[rune]Key{
	'+': KeyAdd,
	'-': KeySub,
	'*': KeyMul,
	'x': KeyMul,
	'X': KeyMul,
	'/': KeyDiv,
	'.': KeyDecimal,
	',': KeyDecimal,
	'=': KeyEquals,
	'(': KeyLParen,
	')': KeyRParen,
	'^': KeyPow,
	'!': KeyFact,
	'%': KeyPercent,
	's': KeySin,
	'c': KeyCos,
	't': KeyTan,
	'l': KeyLn,
	'g': KeyLog,
	'r': KeySqrt,
	'p': KeyPi,
	'e': KeyE,
}

// KeyForRune maps a typed character to a key: digits, operators, and the letter shortcuts
// s c t l g r for sin cos tan ln log √ and p for π.
func KeyForRune(r rune) (Key, bool) {
	if r >= '0' && r <= '9' {
		return DigitKey(int(r - '0')), true
	}
	k, ok := runeKeys[r]
	return k, ok
}
