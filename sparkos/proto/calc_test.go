package proto

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCalcKeyPayload(t *testing.T) {
	key, ok := DecodeCalcKeyPayload(CalcKeyPayload("√"))
	if !ok || key != "√" {
		t.Fatalf("key=%q ok=%v", key, ok)
	}
	if _, ok := DecodeCalcKeyPayload(nil); ok {
		t.Fatal("expected empty key to be rejected")
	}
	if _, ok := DecodeCalcKeyPayload(bytes.Repeat([]byte("1"), MaxCalcKeyBytes+1)); ok {
		t.Fatal("expected long key to be rejected")
	}
	if _, ok := DecodeCalcKeyPayload([]byte{0xff}); ok {
		t.Fatal("expected invalid UTF-8 to be rejected")
	}
}

func TestCalcMemoryAndAnglePayload(t *testing.T) {
	for op := CalcMemClear; op <= CalcMemSub; op++ {
		got, ok := DecodeCalcMemoryPayload(CalcMemoryPayload(op))
		if !ok || got != op {
			t.Fatalf("memory op %s: got=%s ok=%v", op, got, ok)
		}
	}
	if _, ok := DecodeCalcMemoryPayload([]byte{9}); ok {
		t.Fatal("expected unknown memory op to be rejected")
	}

	a, ok := DecodeCalcAnglePayload(CalcAnglePayload(CalcAngleToggle))
	if !ok || a != CalcAngleToggle {
		t.Fatalf("angle=%d ok=%v", a, ok)
	}
	if _, ok := DecodeCalcAnglePayload([]byte{1, 2}); ok {
		t.Fatal("expected long angle payload to be rejected")
	}
}

func TestCalcHistoryPayload(t *testing.T) {
	op, idx, ok := DecodeCalcHistoryPayload(CalcHistoryPayload(CalcHistorySelect, 49))
	if !ok || op != CalcHistorySelect || idx != 49 {
		t.Fatalf("op=%d idx=%d ok=%v", op, idx, ok)
	}
	op, _, ok = DecodeCalcHistoryPayload(CalcHistoryPayload(CalcHistoryNewer, 0))
	if !ok || op != CalcHistoryNewer {
		t.Fatalf("op=%d ok=%v", op, ok)
	}
	if _, _, ok := DecodeCalcHistoryPayload([]byte{9, 0, 0}); ok {
		t.Fatal("expected unknown op to be rejected")
	}
	if _, _, ok := DecodeCalcHistoryPayload([]byte{0, 1}); ok {
		t.Fatal("expected short payload to be rejected")
	}
}

func TestCalcStatePayload(t *testing.T) {
	b := CalcStatePayload(CalcAngleRadians, "12.5", "2 × π +", 0)
	angle, buf, expr, ok := DecodeCalcStatePayload(b)
	if !ok || angle != CalcAngleRadians || buf != "12.5" || expr != "2 × π +" {
		t.Fatalf("angle=%d buf=%q expr=%q ok=%v", angle, buf, expr, ok)
	}

	b = CalcStatePayload(CalcAngleDegrees, "5", "1 × 2 × 3 × 4", 10)
	if len(b) > 10 {
		t.Fatalf("payload length %d exceeds limit", len(b))
	}
	_, buf, expr, ok = DecodeCalcStatePayload(b)
	if !ok || buf != "5" || expr != " 3 × 4" {
		t.Fatalf("buf=%q expr=%q ok=%v", buf, expr, ok)
	}
	if !utf8.ValidString(expr) {
		t.Fatalf("truncated expr is not valid UTF-8: %q", expr)
	}

	long := strings.Repeat("9", 127)
	b = CalcStatePayload(CalcAngleDegrees, long, "2 +", 128)
	if len(b) > 128 {
		t.Fatalf("payload length %d exceeds limit", len(b))
	}
	_, buf, expr, ok = DecodeCalcStatePayload(b)
	if !ok || buf != long[:126] || expr != "" {
		t.Fatalf("long buffer: len(buf)=%d expr=%q ok=%v", len(buf), expr, ok)
	}

	b = CalcStatePayload(CalcAngleRadians, "−"+strings.Repeat("1", 4), "", 7)
	_, buf, _, ok = DecodeCalcStatePayload(b)
	if !ok || buf != "1111" || len(b) > 7 {
		t.Fatalf("rune cut: buf=%q len=%d ok=%v", buf, len(b), ok)
	}

	if _, _, _, ok := DecodeCalcStatePayload([]byte{0, '5'}); ok {
		t.Fatal("expected missing separator to be rejected")
	}
}

func TestErrorPayload(t *testing.T) {
	code, ref, detail, ok := DecodeErrorPayload(ErrorPayload(ErrBadMessage, MsgCalcKey, []byte("?")))
	if !ok || code != ErrBadMessage || ref != MsgCalcKey || string(detail) != "?" {
		t.Fatalf("code=%s ref=%s detail=%q ok=%v", code, ref, detail, ok)
	}
}

func TestLogLinePayloadCutsOnRune(t *testing.T) {
	if got := string(LogLinePayload("calc: 2 × 3 = 6")); got != "calc: 2 × 3 = 6" {
		t.Fatalf("short line changed: %q", got)
	}
	line := string(bytes.Repeat([]byte("1"), MaxLogLineBytes-1)) + "×"
	got := LogLinePayload(line)
	if len(got) != MaxLogLineBytes-1 || !utf8.Valid(got) {
		t.Fatalf("len=%d valid=%v", len(got), utf8.Valid(got))
	}
}

func TestErrorPayloadCutsDetail(t *testing.T) {
	b := ErrorPayload(ErrBadMessage, MsgCalcSetBuffer, bytes.Repeat([]byte("9"), 200))
	if len(b) != 4+MaxErrorDetailBytes {
		t.Fatalf("len=%d", len(b))
	}
}
