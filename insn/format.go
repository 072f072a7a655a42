package insn

import (
	"fmt"
	"strconv"
)

// String renders the operand in canonical assembly syntax.
func (op Operand) String() string {
	switch op.Mode {
	case MODE_REGISTER:
		return op.Reg.String()
	case MODE_INDEXED:
		return fmt.Sprintf("%d(%s)", op.Offset, op.Reg)
	case MODE_INDIRECT:
		return "@" + op.Reg.String()
	case MODE_INDIRECT_INCR:
		return "@" + op.Reg.String() + "+"
	case MODE_SYMBOLIC:
		return fmt.Sprintf("%d(%s)", op.Offset, op.Reg)
	case MODE_IMMEDIATE:
		return "#" + strconv.Itoa(int(op.Value))
	case MODE_ABSOLUTE:
		return fmt.Sprintf("&0x%04X", op.Addr)
	case MODE_CONSTANT:
		return strconv.Itoa(int(op.Value))
	}
	return ""
}

// Mnemonic returns the canonical mnemonic, with the .B suffix for
// byte-sized operations. Word size carries no suffix.
func (in Insn) Mnemonic() string {
	switch in.Format {
	case FORMAT_JUMP:
		return in.Cond.String()
	case FORMAT_SINGLE:
		return in.sized(in.Single.String())
	}
	return in.sized(in.Double.String())
}

// String renders the instruction as canonical assembly text.
func (in Insn) String() string {
	switch in.Format {
	case FORMAT_JUMP:
		return fmt.Sprintf("%s $%d", in.Cond, in.Offset)
	case FORMAT_SINGLE:
		if !in.Single.TakesOperand() {
			return in.Mnemonic()
		}
		return in.Mnemonic() + " " + in.Dst.String()
	}
	return in.Mnemonic() + " " + in.Src.String() + ", " + in.Dst.String()
}
