package insn

// Format is the bit-layout family of an instruction. The 16-bit opcode
// space is partitioned by leading bits: 001 selects the jump format, a
// top nibble of 4-15 a two-operand instruction, and the 000100 block a
// single-operand instruction.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_DOUBLE = Format(0) // two-operand
	FORMAT_SINGLE = Format(1) // single-operand
	FORMAT_JUMP   = Format(2) // jump
)

// Width is the operation size encoded by the B/W bit. Word is the
// default for formats that carry no width bit.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_WORD = Width(0) // W
	WIDTH_BYTE = Width(1) // B
)

// DoubleOp is a two-operand opcode. Its value is the top nibble of the
// instruction word.
type DoubleOp int

//go:generate go tool stringer -linecomment -type=DoubleOp
const (
	OP2_MOV  = DoubleOp(4)  // MOV
	OP2_ADD  = DoubleOp(5)  // ADD
	OP2_ADDC = DoubleOp(6)  // ADDC
	OP2_SUBC = DoubleOp(7)  // SUBC
	OP2_SUB  = DoubleOp(8)  // SUB
	OP2_CMP  = DoubleOp(9)  // CMP
	OP2_DADD = DoubleOp(10) // DADD
	OP2_BIT  = DoubleOp(11) // BIT
	OP2_BIC  = DoubleOp(12) // BIC
	OP2_BIS  = DoubleOp(13) // BIS
	OP2_XOR  = DoubleOp(14) // XOR
	OP2_AND  = DoubleOp(15) // AND
)

// SingleOp is a single-operand opcode. Its value is bits 9:7 of the
// instruction word within the 000100 block.
type SingleOp int

//go:generate go tool stringer -linecomment -type=SingleOp
const (
	OP1_RRC  = SingleOp(0) // RRC
	OP1_SWPB = SingleOp(1) // SWPB
	OP1_RRA  = SingleOp(2) // RRA
	OP1_SXT  = SingleOp(3) // SXT
	OP1_PUSH = SingleOp(4) // PUSH
	OP1_CALL = SingleOp(5) // CALL
	OP1_RETI = SingleOp(6) // RETI
)

// Condition is a jump condition code, bits 12:10 of the jump word.
type Condition int

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_JNE = Condition(0) // JNE
	COND_JEQ = Condition(1) // JEQ
	COND_JNC = Condition(2) // JNC
	COND_JC  = Condition(3) // JC
	COND_JN  = Condition(4) // JN
	COND_JGE = Condition(5) // JGE
	COND_JL  = Condition(6) // JL
	COND_JMP = Condition(7) // JMP
)

// Sized reports whether the opcode honors the width bit. SWPB, SXT and
// CALL operate on whole words and ignore it.
func (op SingleOp) Sized() bool {
	return op == OP1_RRC || op == OP1_RRA || op == OP1_PUSH
}

// TakesOperand reports whether the opcode consults the addressing
// field. RETI encodes no operand.
func (op SingleOp) TakesOperand() bool {
	return op != OP1_RETI
}
