package insn

import (
	"github.com/ezrec/msp430/translate"
)

var f = translate.From

// ErrTruncated indicates the buffer ends before a required word, either
// the instruction word itself or an extension word. Callers can recover
// by supplying more bytes or reporting end of stream.
type ErrTruncated struct {
	Needed    int
	Available int
}

func (err ErrTruncated) Error() string {
	return f("truncated instruction: need %d bytes, have %d", err.Needed, err.Available)
}

func (err ErrTruncated) Is(target error) (ok bool) {
	_, ok = target.(ErrTruncated)
	return
}

// ErrUnknownOpcode indicates a first word that matches no instruction
// format. Scanners typically skip a word and retry.
type ErrUnknownOpcode uint16

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode 0x%04x", uint16(err))
}

func (err ErrUnknownOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownOpcode)
	return
}

// ErrReserved indicates a word that is well-formed for its format but
// architecturally undefined.
type ErrReserved uint16

func (err ErrReserved) Error() string {
	return f("reserved encoding 0x%04x", uint16(err))
}

func (err ErrReserved) Is(target error) (ok bool) {
	_, ok = target.(ErrReserved)
	return
}
