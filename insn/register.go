package insn

// Register is one of the sixteen MSP430 registers. R0 through R2 render
// by their architectural roles; R3 has no role other than constant
// generation and keeps its numeric name.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_PC  = Register(0)  // PC
	REG_SP  = Register(1)  // SP
	REG_SR  = Register(2)  // SR
	REG_CG  = Register(3)  // R3
	REG_R4  = Register(4)  // R4
	REG_R5  = Register(5)  // R5
	REG_R6  = Register(6)  // R6
	REG_R7  = Register(7)  // R7
	REG_R8  = Register(8)  // R8
	REG_R9  = Register(9)  // R9
	REG_R10 = Register(10) // R10
	REG_R11 = Register(11) // R11
	REG_R12 = Register(12) // R12
	REG_R13 = Register(13) // R13
	REG_R14 = Register(14) // R14
	REG_R15 = Register(15) // R15
)
