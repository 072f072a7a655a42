package insn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSource(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		reg      Register
		as       uint16
		data     []byte
		want     Operand
		consumed int
	}){
		{"gp_register", REG_R9, 0, nil,
			Operand{Mode: MODE_REGISTER, Reg: REG_R9}, 0},
		{"gp_indexed", REG_R9, 1, []byte{0x02, 0x00},
			Operand{Mode: MODE_INDEXED, Reg: REG_R9, Offset: 2}, 2},
		{"gp_indexed_negative", REG_R9, 1, []byte{0xfd, 0xff},
			Operand{Mode: MODE_INDEXED, Reg: REG_R9, Offset: -2}, 2},
		{"gp_indirect", REG_R9, 2, nil,
			Operand{Mode: MODE_INDIRECT, Reg: REG_R9}, 0},
		{"gp_autoincrement", REG_R9, 3, nil,
			Operand{Mode: MODE_INDIRECT_INCR, Reg: REG_R9}, 0},

		{"pc_register", REG_PC, 0, nil,
			Operand{Mode: MODE_REGISTER, Reg: REG_PC}, 0},
		{"pc_symbolic", REG_PC, 1, []byte{0x02, 0x00},
			Operand{Mode: MODE_SYMBOLIC, Reg: REG_PC, Offset: 2}, 2},
		{"pc_immediate", REG_PC, 3, []byte{0x02, 0x00},
			Operand{Mode: MODE_IMMEDIATE, Value: 2}, 2},
		{"pc_immediate_negative", REG_PC, 3, []byte{0xfe, 0xff},
			Operand{Mode: MODE_IMMEDIATE, Value: -1}, 2},

		{"sr_register", REG_SR, 0, nil,
			Operand{Mode: MODE_REGISTER, Reg: REG_SR}, 0},
		{"sr_absolute", REG_SR, 1, []byte{0x02, 0x00},
			Operand{Mode: MODE_ABSOLUTE, Addr: 2}, 2},
		{"sr_constant_four", REG_SR, 2, nil,
			Operand{Mode: MODE_CONSTANT, Value: 4}, 0},
		{"sr_constant_eight", REG_SR, 3, nil,
			Operand{Mode: MODE_CONSTANT, Value: 8}, 0},

		{"cg_constant_zero", REG_CG, 0, nil,
			Operand{Mode: MODE_CONSTANT, Value: 0}, 0},
		{"cg_constant_one", REG_CG, 1, nil,
			Operand{Mode: MODE_CONSTANT, Value: 1}, 0},
		{"cg_constant_two", REG_CG, 2, nil,
			Operand{Mode: MODE_CONSTANT, Value: 2}, 0},
		{"cg_constant_minus_one", REG_CG, 3, nil,
			Operand{Mode: MODE_CONSTANT, Value: -1}, 0},
	}

	for _, entry := range table {
		cur := &cursor{data: entry.data}
		op, err := resolveSource(cur, entry.reg, entry.as)
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, op, entry.name)
		assert.Equal(entry.consumed, cur.Consumed(), entry.name)
		assert.Equal(entry.consumed/2, op.ExtWords(), entry.name)
	}
}

func TestResolveSourceTruncated(t *testing.T) {
	assert := assert.New(t)

	for _, entry := range [](struct {
		name string
		reg  Register
		as   uint16
	}){
		{"gp_indexed", REG_R9, 1},
		{"pc_symbolic", REG_PC, 1},
		{"pc_immediate", REG_PC, 3},
		{"sr_absolute", REG_SR, 1},
	} {
		cur := &cursor{}
		_, err := resolveSource(cur, entry.reg, entry.as)
		assert.Equal(ErrTruncated{Needed: 2, Available: 0}, err, entry.name)
	}

	// Constant generators consume nothing even with an empty buffer.
	cur := &cursor{}
	op, err := resolveSource(cur, REG_CG, 1)
	assert.NoError(err)
	assert.Equal(Operand{Mode: MODE_CONSTANT, Value: 1}, op)
}

func TestResolveDestination(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		reg      Register
		ad       uint16
		data     []byte
		want     Operand
		consumed int
	}){
		{"gp_register", REG_R9, 0, nil,
			Operand{Mode: MODE_REGISTER, Reg: REG_R9}, 0},
		{"gp_indexed", REG_R9, 1, []byte{0x02, 0x00},
			Operand{Mode: MODE_INDEXED, Reg: REG_R9, Offset: 2}, 2},
		{"pc_symbolic", REG_PC, 1, []byte{0x04, 0x00},
			Operand{Mode: MODE_SYMBOLIC, Reg: REG_PC, Offset: 4}, 2},
		{"sr_absolute", REG_SR, 1, []byte{0x00, 0x44},
			Operand{Mode: MODE_ABSOLUTE, Addr: 0x4400}, 2},
		// No constant substitution on the destination side.
		{"cg_register", REG_CG, 0, nil,
			Operand{Mode: MODE_REGISTER, Reg: REG_CG}, 0},
		{"sr_register", REG_SR, 0, nil,
			Operand{Mode: MODE_REGISTER, Reg: REG_SR}, 0},
	}

	for _, entry := range table {
		cur := &cursor{data: entry.data}
		op, err := resolveDestination(cur, entry.reg, entry.ad)
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, op, entry.name)
		assert.Equal(entry.consumed, cur.Consumed(), entry.name)
	}
}

func TestOperandStep(t *testing.T) {
	assert := assert.New(t)

	incr := Operand{Mode: MODE_INDIRECT_INCR, Reg: REG_R9}
	assert.Equal(2, incr.Step(WIDTH_WORD))
	assert.Equal(1, incr.Step(WIDTH_BYTE))

	direct := Operand{Mode: MODE_REGISTER, Reg: REG_R9}
	assert.Equal(0, direct.Step(WIDTH_WORD))
}
