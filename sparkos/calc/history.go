package calc

// HistoryCapacity is the number of evaluations kept by a History.
const HistoryCapacity = 50

// Entry is one completed evaluation.
type Entry struct {
	LHS    string
	Result string
}

// History is a fixed-capacity ring of entries, read newest first.
type History struct {
	buf  []Entry
	head int
	n    int
}

// NewHistory returns a ring holding at most capacity entries. Capacities outside
// 1..HistoryCapacity fall back to HistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 || capacity > HistoryCapacity {
		capacity = HistoryCapacity
	}
	return &History{buf: make([]Entry, capacity)}
}

// Push records an entry, evicting the oldest one when full.
func (h *History) Push(lhs, result string) {
	h.buf[h.head] = Entry{LHS: lhs, Result: result}
	h.head = (h.head + 1) % len(h.buf)
	if h.n < len(h.buf) {
		h.n++
	}
}

func (h *History) Len() int { return h.n }

// At returns the i-th newest entry (0 is the most recent).
func (h *History) At(i int) (Entry, bool) {
	if i < 0 || i >= h.n {
		return Entry{}, false
	}
	c := len(h.buf)
	return h.buf[(h.head-1-i+c)%c], true
}

// Entries returns the entries newest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, 0, h.n)
	for i := 0; i < h.n; i++ {
		e, _ := h.At(i)
		out = append(out, e)
	}
	return out
}

func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = Entry{}
	}
	h.head = 0
	h.n = 0
}

// Memory is the single accumulator register.
type Memory struct {
	v float64
}

func (m *Memory) Value() float64 { return m.v }
func (m *Memory) Clear()         { m.v = 0 }
func (m *Memory) Add(x float64)  { m.v += x }
func (m *Memory) Sub(x float64)  { m.v -= x }

// Indicator is the memory chip text, empty while the register is zero.
func (m *Memory) Indicator() string {
	if m.v == 0 {
		return ""
	}
	return "M: " + FormatResult(m.v)
}
