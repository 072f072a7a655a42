package insn

// Bit fields of the three instruction formats.
const (
	jumpFormatMask = 0xE000
	jumpFormatBits = 0x2000
	jumpCondMask   = 0x1C00
	jumpOffsetMask = 0x03FF
	jumpSignBit    = 0x0200

	singleFormatMask = 0xFC00
	singleFormatBits = 0x1000
	singleOpcodeMask = 0x0380
	singleWidthBit   = 0x0040
	singleModeMask   = 0x0030
	singleRegMask    = 0x000F

	doubleSrcMask  = 0x0F00
	doubleAdBit    = 0x0080
	doubleWidthBit = 0x0040
	doubleAsMask   = 0x0030
	doubleDstMask  = 0x000F
)

// Decode reads one instruction from the front of data. It consumes 2,
// 4 or 6 bytes depending on the addressing modes; the count is
// recoverable from the returned Insn's Len. Bytes beyond the consumed
// length are ignored and never affect the result.
func Decode(data []byte) (in Insn, err error) {
	cur := &cursor{data: data}

	word, err := cur.TakeWord()
	if err != nil {
		return
	}

	switch {
	case word&jumpFormatMask == jumpFormatBits:
		return decodeJump(word)
	case word>>12 >= uint16(OP2_MOV):
		return decodeDouble(cur, word)
	case word&singleFormatMask == singleFormatBits:
		return decodeSingle(cur, word)
	}
	return Insn{}, ErrUnknownOpcode(word)
}

// decodeJump unpacks a condition code and a 10-bit two's-complement
// word offset. The offset is reported in bytes; turning it into a
// target address is the caller's business, since the decoder has no
// load address.
func decodeJump(word uint16) (in Insn, err error) {
	offset := int16(word & jumpOffsetMask)
	if word&jumpSignBit != 0 {
		offset -= jumpOffsetMask + 1
	}
	in = Insn{
		Format: FORMAT_JUMP,
		Cond:   Condition((word & jumpCondMask) >> 10),
		Offset: 2 * offset,
	}
	return
}

// decodeSingle unpacks a single-operand instruction. The operand is
// reported as the destination.
func decodeSingle(cur *cursor, word uint16) (in Insn, err error) {
	op := SingleOp((word & singleOpcodeMask) >> 7)
	if op > OP1_RETI {
		return Insn{}, ErrReserved(word)
	}

	in = Insn{Format: FORMAT_SINGLE, Single: op, Width: WIDTH_WORD}
	if !op.TakesOperand() {
		return
	}
	if op.Sized() && word&singleWidthBit != 0 {
		in.Width = WIDTH_BYTE
	}

	in.Dst, err = resolveSource(cur, Register(word&singleRegMask), (word&singleModeMask)>>4)
	if err != nil {
		return Insn{}, err
	}
	return
}

// decodeDouble unpacks a two-operand instruction. The source extension
// word, when present, precedes the destination's.
func decodeDouble(cur *cursor, word uint16) (in Insn, err error) {
	in = Insn{Format: FORMAT_DOUBLE, Double: DoubleOp(word >> 12)}
	if word&doubleWidthBit != 0 {
		in.Width = WIDTH_BYTE
	}

	in.Src, err = resolveSource(cur, Register((word&doubleSrcMask)>>8), (word&doubleAsMask)>>4)
	if err != nil {
		return Insn{}, err
	}

	in.Dst, err = resolveDestination(cur, Register(word&doubleDstMask), (word&doubleAdBit)>>7)
	if err != nil {
		return Insn{}, err
	}
	return
}
