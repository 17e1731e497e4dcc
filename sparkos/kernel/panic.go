package kernel

import (
	"sync"
	"sync/atomic"
)

// PanicInfo describes the first task panic.
type PanicInfo struct {
	TaskID TaskID
	// Task is the Go type of the task that panicked, e.g. "*calc.Task".
	Task  string
	Value any
	Stack []byte
}

var (
	panicked     atomic.Bool
	panicOnce    sync.Once
	panicHandler atomic.Pointer[func(PanicInfo)]
)

// InPanicMode reports whether a task has panicked. The kernel never leaves panic mode.
func InPanicMode() bool {
	return panicked.Load()
}

// SetPanicHandler installs the process-wide handler for task panics. Only the first panic is
// reported; fn must not panic itself. A nil fn removes the handler.
func SetPanicHandler(fn func(PanicInfo)) {
	if fn == nil {
		panicHandler.Store(nil)
		return
	}
	panicHandler.Store(&fn)
}

func reportPanic(info PanicInfo) {
	panicOnce.Do(func() {
		panicked.Store(true)
		info.Stack = captureStack()
		if fn := panicHandler.Load(); fn != nil {
			(*fn)(info)
		}
	})
}
