package keypad

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/proto"
)

var codeKeys = map[hal.KeyCode]calc.Key{
	hal.KeyEnter:     calc.KeyEquals,
	hal.KeyBackspace: calc.KeyBackspace,
	hal.KeyEscape:    calc.KeyClear,
	hal.KeyDelete:    calc.KeyClear,
}

func keyRequest(k calc.Key) request {
	return request{kind: proto.MsgCalcKey, payload: proto.CalcKeyPayload(string(k))}
}

func memRequest(op proto.CalcMemOp) request {
	return request{kind: proto.MsgCalcMemory, payload: proto.CalcMemoryPayload(op)}
}

func historyRequest(op proto.CalcHistoryOp) request {
	return request{kind: proto.MsgCalcHistory, payload: proto.CalcHistoryPayload(op, 0)}
}

// requestFor maps a key press to a calc request.
func requestFor(ev hal.KeyEvent) (request, bool) {
	if ev.Rune != 0 {
		if k, ok := calc.KeyForRune(ev.Rune); ok {
			return keyRequest(k), true
		}
		return request{}, false
	}

	if k, ok := codeKeys[ev.Code]; ok {
		return keyRequest(k), true
	}
	switch ev.Code {
	case hal.KeyF1:
		return request{kind: proto.MsgCalcAngle, payload: proto.CalcAnglePayload(proto.CalcAngleToggle)}, true
	case hal.KeyF2:
		return memRequest(proto.CalcMemAdd), true
	case hal.KeyF3:
		return memRequest(proto.CalcMemRecall), true
	case hal.KeyF4:
		return memRequest(proto.CalcMemSub), true
	case hal.KeyF5:
		return memRequest(proto.CalcMemClear), true
	case hal.KeyUp:
		return historyRequest(proto.CalcHistoryOlder), true
	case hal.KeyDown:
		return historyRequest(proto.CalcHistoryNewer), true
	}
	return request{}, false
}
