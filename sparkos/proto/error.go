package proto

import "encoding/binary"

// ErrCode is the category carried by a MsgError reply.
type ErrCode uint16

const (
	ErrUnknown ErrCode = iota
	// ErrBadMessage: the payload did not decode or the calculator rejected it.
	ErrBadMessage
	// ErrNotFound: a history index or cursor move pointed past the recorded entries.
	ErrNotFound
)

func (c ErrCode) String() string {
	switch c {
	case ErrBadMessage:
		return "bad_message"
	case ErrNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// MaxErrorDetailBytes keeps an error reply within one kernel message.
const MaxErrorDetailBytes = 124

// ErrorPayload encodes a MsgError payload.
//
// Layout (little-endian):
//   - u16: code
//   - u16: kind of the request that failed
//   - bytes: the failing request payload, cut to MaxErrorDetailBytes
func ErrorPayload(code ErrCode, ref Kind, detail []byte) []byte {
	if len(detail) > MaxErrorDetailBytes {
		detail = detail[:MaxErrorDetailBytes]
	}
	buf := make([]byte, 4+len(detail))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(code))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(ref))
	copy(buf[4:], detail)
	return buf
}

func DecodeErrorPayload(payload []byte) (code ErrCode, ref Kind, detail []byte, ok bool) {
	if len(payload) < 4 {
		return 0, 0, nil, false
	}
	code = ErrCode(binary.LittleEndian.Uint16(payload[0:2]))
	ref = Kind(binary.LittleEndian.Uint16(payload[2:4]))
	return code, ref, payload[4:], true
}
