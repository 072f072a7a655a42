package insn

// Alias returns the assembler-level emulated form of the instruction,
// or "" when the encoding has no emulated form. The MSP430 assembler
// spells a number of common operations as two-operand instructions
// with constant-generator sources ("CLR R5" for "MOV 0, R5", "RET" for
// "MOV @SP+, PC", and so on); Alias recovers that spelling. The
// canonical String rendering never substitutes aliases on its own.
func (in Insn) Alias() string {
	if in.Format != FORMAT_DOUBLE {
		return ""
	}

	constant := func(v int16) bool {
		return in.Src.Mode == MODE_CONSTANT && in.Src.Value == v
	}
	dstReg := func(reg Register) bool {
		return in.Dst.Mode == MODE_REGISTER && in.Dst.Reg == reg
	}
	unary := func(name string) string {
		return in.sized(name) + " " + in.Dst.String()
	}

	switch in.Double {
	case OP2_MOV:
		switch {
		case constant(0) && dstReg(REG_CG):
			return "NOP"
		case in.Src.Mode == MODE_INDIRECT_INCR && in.Src.Reg == REG_SP && !dstReg(REG_PC):
			return unary("POP")
		case dstReg(REG_PC):
			// RET and BR exist only at word size.
			if in.Width != WIDTH_WORD {
				return ""
			}
			if in.Src.Mode == MODE_INDIRECT_INCR && in.Src.Reg == REG_SP {
				return "RET"
			}
			return "BR " + in.Src.String()
		case constant(0):
			return unary("CLR")
		}
	case OP2_ADD:
		switch {
		case constant(1):
			return unary("INC")
		case constant(2):
			return unary("INCD")
		case in.Src == in.Dst:
			return unary("RLA")
		}
	case OP2_ADDC:
		switch {
		case constant(0):
			return unary("ADC")
		case in.Src == in.Dst:
			return unary("RLC")
		}
	case OP2_SUB:
		switch {
		case constant(1):
			return unary("DEC")
		case constant(2):
			return unary("DECD")
		}
	case OP2_SUBC:
		if constant(0) {
			return unary("SBC")
		}
	case OP2_CMP:
		if constant(0) {
			return unary("TST")
		}
	case OP2_DADD:
		if constant(0) {
			return unary("DADC")
		}
	case OP2_BIC:
		if dstReg(REG_SR) {
			switch {
			case constant(1):
				return "CLRC"
			case constant(2):
				return "CLRZ"
			case constant(4):
				return "CLRN"
			case constant(8):
				return "DINT"
			}
		}
	case OP2_BIS:
		if dstReg(REG_SR) {
			switch {
			case constant(1):
				return "SETC"
			case constant(2):
				return "SETZ"
			case constant(4):
				return "SETN"
			case constant(8):
				return "EINT"
			}
		}
	case OP2_XOR:
		if constant(-1) {
			return unary("INV")
		}
	}
	return ""
}

func (in Insn) sized(name string) string {
	if in.Width == WIDTH_BYTE {
		return name + "." + WIDTH_BYTE.String()
	}
	return name
}
