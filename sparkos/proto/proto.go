package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgError
	MsgAppShutdown

	MsgCalcKey
	MsgCalcSetBuffer
	MsgCalcMemory
	MsgCalcAngle
	MsgCalcHistory
	MsgCalcState
)

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgError:
		return "error"
	case MsgAppShutdown:
		return "app_shutdown"
	case MsgCalcKey:
		return "calc_key"
	case MsgCalcSetBuffer:
		return "calc_set_buffer"
	case MsgCalcMemory:
		return "calc_memory"
	case MsgCalcAngle:
		return "calc_angle"
	case MsgCalcHistory:
		return "calc_history"
	case MsgCalcState:
		return "calc_state"
	default:
		return "unknown"
	}
}
