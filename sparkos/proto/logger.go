package proto

import "unicode/utf8"

// MaxLogLineBytes matches the kernel message size.
const MaxLogLineBytes = 128

// LogLinePayload encodes a MsgLogLine payload: UTF-8 text without a trailing newline. Longer
// lines are cut on a rune boundary so "×" and "√" in calculator output never split.
func LogLinePayload(line string) []byte {
	if len(line) > MaxLogLineBytes {
		i := MaxLogLineBytes
		for i > 0 && !utf8.RuneStart(line[i]) {
			i--
		}
		line = line[:i]
	}
	return []byte(line)
}
