package insn

// AddressingMode tags how an Operand's fields are interpreted.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	MODE_NONE          = AddressingMode(0) // none
	MODE_REGISTER      = AddressingMode(1) // register
	MODE_INDEXED       = AddressingMode(2) // indexed
	MODE_INDIRECT      = AddressingMode(3) // indirect
	MODE_INDIRECT_INCR = AddressingMode(4) // indirect autoincrement
	MODE_SYMBOLIC      = AddressingMode(5) // symbolic
	MODE_IMMEDIATE     = AddressingMode(6) // immediate
	MODE_ABSOLUTE      = AddressingMode(7) // absolute
	MODE_CONSTANT      = AddressingMode(8) // constant
)

// Operand is one resolved instruction operand. Which fields are
// meaningful depends on Mode: register modes carry Reg, indexed and
// symbolic modes a signed Offset, immediate and constant modes a signed
// Value, and absolute mode an Addr. It is a value type with no
// mutation after decode.
type Operand struct {
	Mode   AddressingMode
	Reg    Register
	Offset int16
	Value  int16
	Addr   uint16
}

// ExtWords returns how many extension words the operand occupied in the
// instruction encoding.
func (op Operand) ExtWords() int {
	switch op.Mode {
	case MODE_INDEXED, MODE_SYMBOLIC, MODE_IMMEDIATE, MODE_ABSOLUTE:
		return 1
	}
	return 0
}

// Step returns the register increment, in bytes, an autoincrement
// operand implies for the given operation width. The decoder records
// the amount; executing it is a simulator's business.
func (op Operand) Step(width Width) int {
	if op.Mode != MODE_INDIRECT_INCR {
		return 0
	}
	if width == WIDTH_BYTE {
		return 1
	}
	return 2
}

// resolveSource resolves a 2-bit As field and source register into an
// Operand, fetching an extension word from the cursor where the mode
// requires one.
//
// Registers 2 and 3 never behave as plain storage here: outside the
// R2/As=00 and R2/As=10 cases their encodings are reinterpreted as the
// constants 0, 1, 2, 4, 8 and -1, and no extension word is consumed.
func resolveSource(cur *cursor, reg Register, as uint16) (op Operand, err error) {
	switch as {
	case 0:
		if reg == REG_CG {
			return Operand{Mode: MODE_CONSTANT, Value: 0}, nil
		}
		return Operand{Mode: MODE_REGISTER, Reg: reg}, nil

	case 1:
		if reg == REG_CG {
			return Operand{Mode: MODE_CONSTANT, Value: 1}, nil
		}
		var ext uint16
		ext, err = cur.TakeWord()
		if err != nil {
			return
		}
		switch reg {
		case REG_PC:
			// Offset is relative to the next instruction word.
			return Operand{Mode: MODE_SYMBOLIC, Reg: reg, Offset: int16(ext)}, nil
		case REG_SR:
			return Operand{Mode: MODE_ABSOLUTE, Addr: ext}, nil
		}
		return Operand{Mode: MODE_INDEXED, Reg: reg, Offset: int16(ext)}, nil

	case 2:
		switch reg {
		case REG_SR:
			return Operand{Mode: MODE_CONSTANT, Value: 4}, nil
		case REG_CG:
			return Operand{Mode: MODE_CONSTANT, Value: 2}, nil
		}
		return Operand{Mode: MODE_INDIRECT, Reg: reg}, nil

	default: // as == 3
		switch reg {
		case REG_PC:
			var ext uint16
			ext, err = cur.TakeWord()
			if err != nil {
				return
			}
			return Operand{Mode: MODE_IMMEDIATE, Value: int16(ext)}, nil
		case REG_SR:
			return Operand{Mode: MODE_CONSTANT, Value: 8}, nil
		case REG_CG:
			return Operand{Mode: MODE_CONSTANT, Value: -1}, nil
		}
		return Operand{Mode: MODE_INDIRECT_INCR, Reg: reg}, nil
	}
}

// resolveDestination resolves the 1-bit Ad field and destination
// register. Destinations are restricted to register and
// indexed/symbolic/absolute modes; the indirect and autoincrement
// modes cannot be encoded in one bit. Constant-generator substitution
// does not apply: a constant is not a storable location, and R2/R3 as
// destinations address the actual registers.
func resolveDestination(cur *cursor, reg Register, ad uint16) (op Operand, err error) {
	if ad == 0 {
		return Operand{Mode: MODE_REGISTER, Reg: reg}, nil
	}
	var ext uint16
	ext, err = cur.TakeWord()
	if err != nil {
		return
	}
	switch reg {
	case REG_PC:
		return Operand{Mode: MODE_SYMBOLIC, Reg: reg, Offset: int16(ext)}, nil
	case REG_SR:
		return Operand{Mode: MODE_ABSOLUTE, Addr: ext}, nil
	}
	return Operand{Mode: MODE_INDEXED, Reg: reg, Offset: int16(ext)}, nil
}
