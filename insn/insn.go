package insn

// Insn is one decoded instruction. Exactly one of Double, Single or
// Cond is meaningful, selected by Format. Two-operand instructions
// populate both Src and Dst; single-operand instructions populate only
// Dst; jumps populate neither and carry Offset instead.
type Insn struct {
	Format Format
	Double DoubleOp
	Single SingleOp
	Cond   Condition
	Width  Width
	Src    Operand
	Dst    Operand
	Offset int16 // signed jump displacement in bytes
}

// Len returns the encoded length in bytes: 2 for the instruction word
// plus 2 per extension word consumed. Jumps are always 2.
func (in Insn) Len() int {
	return 2 + 2*(in.Src.ExtWords()+in.Dst.ExtWords())
}
