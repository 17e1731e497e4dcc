package proto

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// MaxCalcKeyBytes bounds a MsgCalcKey payload.
const MaxCalcKeyBytes = 16

// CalcKeyPayload encodes a MsgCalcKey payload: the UTF-8 name of one logical key.
func CalcKeyPayload(key string) []byte {
	return []byte(key)
}

func DecodeCalcKeyPayload(b []byte) (key string, ok bool) {
	if len(b) == 0 || len(b) > MaxCalcKeyBytes || !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// CalcSetBufferPayload encodes a MsgCalcSetBuffer payload: UTF-8 text, empty meaning
// "reset to the placeholder".
func CalcSetBufferPayload(text string) []byte {
	return []byte(text)
}

func DecodeCalcSetBufferPayload(b []byte) (text string, ok bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// CalcMemOp selects a memory register operation.
type CalcMemOp uint8

const (
	CalcMemClear CalcMemOp = iota
	CalcMemRecall
	CalcMemAdd
	CalcMemSub
)

func (op CalcMemOp) String() string {
	switch op {
	case CalcMemClear:
		return "MC"
	case CalcMemRecall:
		return "MR"
	case CalcMemAdd:
		return "M+"
	case CalcMemSub:
		return "M-"
	default:
		return "M?"
	}
}

// CalcMemoryPayload encodes a MsgCalcMemory payload.
//
// Payload format:
//
//	b[0] : CalcMemOp
func CalcMemoryPayload(op CalcMemOp) []byte {
	return []byte{byte(op)}
}

func DecodeCalcMemoryPayload(b []byte) (op CalcMemOp, ok bool) {
	if len(b) != 1 || CalcMemOp(b[0]) > CalcMemSub {
		return 0, false
	}
	return CalcMemOp(b[0]), true
}

// CalcAngle is the MsgCalcAngle request and the angle byte of MsgCalcState.
type CalcAngle uint8

const (
	CalcAngleDegrees CalcAngle = iota
	CalcAngleRadians
	// CalcAngleToggle is only valid in requests.
	CalcAngleToggle
)

// CalcAnglePayload encodes a MsgCalcAngle payload.
//
// Payload format:
//
//	b[0] : CalcAngle
func CalcAnglePayload(a CalcAngle) []byte {
	return []byte{byte(a)}
}

func DecodeCalcAnglePayload(b []byte) (a CalcAngle, ok bool) {
	if len(b) != 1 || CalcAngle(b[0]) > CalcAngleToggle {
		return 0, false
	}
	return CalcAngle(b[0]), true
}

// CalcHistoryOp selects a history operation.
type CalcHistoryOp uint8

const (
	CalcHistorySelect CalcHistoryOp = iota
	CalcHistoryClear
	// CalcHistoryOlder and CalcHistoryNewer move the selection cursor one entry and copy the
	// selected result into the buffer.
	CalcHistoryOlder
	CalcHistoryNewer
)

// CalcHistoryPayload encodes a MsgCalcHistory payload.
//
// Layout (little-endian):
//   - u8: CalcHistoryOp
//   - u16: entry index, newest first (CalcHistorySelect only)
func CalcHistoryPayload(op CalcHistoryOp, index uint16) []byte {
	buf := make([]byte, 3)
	buf[0] = byte(op)
	binary.LittleEndian.PutUint16(buf[1:3], index)
	return buf
}

func DecodeCalcHistoryPayload(b []byte) (op CalcHistoryOp, index uint16, ok bool) {
	if len(b) != 3 || CalcHistoryOp(b[0]) > CalcHistoryNewer {
		return 0, 0, false
	}
	return CalcHistoryOp(b[0]), binary.LittleEndian.Uint16(b[1:3]), true
}

const calcStateSep = 0x1f

// CalcStatePayload encodes a MsgCalcState payload.
//
// Payload format:
//
//	b[0]   : CalcAngle (degrees or radians)
//	b[1:]  : buffer, 0x1F, expression (UTF-8)
//
// When the result exceeds limit bytes the expression is cut from the left on a rune boundary so
// its most recent part survives. A buffer that does not fit on its own is cut the same way and
// the expression is left empty. limit must be at least 2.
func CalcStatePayload(angle CalcAngle, buffer, expr string, limit int) []byte {
	b := make([]byte, 0, 2+len(buffer)+len(expr))
	b = append(b, byte(angle))
	b = append(b, buffer...)
	b = append(b, calcStateSep)
	if limit <= 0 || len(b)+len(expr) <= limit {
		return append(b, expr...)
	}
	if len(b) > limit {
		// The buffer alone is too long: keep its rightmost digits and drop the expression.
		b = append(b[:1], keepTail(buffer, limit-2)...)
		return append(b, calcStateSep)
	}
	return append(b, keepTail(expr, limit-len(b))...)
}

// keepTail returns the last n bytes of s or fewer, starting on a rune boundary.
func keepTail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	rest := s[len(s)-n:]
	for len(rest) > 0 && !utf8.RuneStart(rest[0]) {
		rest = rest[1:]
	}
	return rest
}

func DecodeCalcStatePayload(b []byte) (angle CalcAngle, buffer, expr string, ok bool) {
	if len(b) < 2 || CalcAngle(b[0]) > CalcAngleRadians {
		return 0, "", "", false
	}
	i := bytes.IndexByte(b[1:], calcStateSep)
	if i < 0 {
		return 0, "", "", false
	}
	return CalcAngle(b[0]), string(b[1 : 1+i]), string(b[2+i:]), true
}
