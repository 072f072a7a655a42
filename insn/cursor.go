package insn

import (
	"encoding/binary"
)

// cursor reads little-endian 16-bit words from a borrowed byte slice.
// It never reads past the end, never wraps, and never mutates the
// slice. Sign interpretation is left to the callers.
type cursor struct {
	data []byte
	pos  int
}

// PeekWord returns the word at a byte offset from the current position
// without consuming it.
func (cur *cursor) PeekWord(offset int) (word uint16, err error) {
	at := cur.pos + offset
	if at+2 > len(cur.data) {
		have := len(cur.data) - at
		if have < 0 {
			have = 0
		}
		return 0, ErrTruncated{Needed: 2, Available: have}
	}
	return binary.LittleEndian.Uint16(cur.data[at:]), nil
}

// TakeWord consumes and returns the next word.
func (cur *cursor) TakeWord() (word uint16, err error) {
	word, err = cur.PeekWord(0)
	if err == nil {
		cur.pos += 2
	}
	return
}

// Consumed returns the running count of bytes taken.
func (cur *cursor) Consumed() int {
	return cur.pos
}
