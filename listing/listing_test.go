package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/msp430/image"
)

func TestListerEntries(t *testing.T) {
	assert := assert.New(t)

	lst := &Lister{
		Segments: []image.Segment{
			{Addr: 0x4400, Data: []byte{
				0x31, 0x40, 0x00, 0x44, // MOV #17408, SP
				0x03, 0x43, // MOV 0, R3
				0xf9, 0x23, // JNE $-14
			}},
			{Addr: 0xfffe, Data: []byte{0x00, 0x44}},
		},
	}

	var addrs []uint16
	var texts []string
	for addr, entry := range lst.Entries() {
		assert.Equal(addr, entry.Addr)
		addrs = append(addrs, addr)
		texts = append(texts, entry.Text(false))
	}

	assert.Equal([]uint16{0x4400, 0x4404, 0x4406, 0xfffe}, addrs)
	assert.Equal([]string{
		"MOV #17408, SP",
		"MOV 0, R3",
		"JNE $-14",
		"MOV R4, PC",
	}, texts)
}

// Undecodable words become data directives and the sweep continues at
// the next word; a trailing odd byte becomes a .byte directive.
func TestListerDataFallback(t *testing.T) {
	assert := assert.New(t)

	lst := &Lister{
		Segments: []image.Segment{
			{Addr: 0x4400, Data: []byte{
				0x00, 0x00, // no instruction
				0x06, 0x45, // MOV R5, R6
				0x19, 0x10, 0x04, 0x00, // RRC 4(R9)
				0x80, 0x13, // reserved encoding
				0xff, // odd tail
			}},
		},
	}

	var texts []string
	for _, entry := range lst.Entries() {
		texts = append(texts, entry.Text(false))
	}

	assert.Equal([]string{
		".word 0x0000",
		"MOV R5, R6",
		"RRC 4(R9)",
		".word 0x1380",
		".byte 0xFF",
	}, texts)
}

// A valid first word whose extension word is cut off at the segment
// boundary degrades to data entries instead of stalling.
func TestListerTruncatedTail(t *testing.T) {
	assert := assert.New(t)

	lst := &Lister{
		Segments: []image.Segment{
			{Addr: 0x4400, Data: []byte{0x19, 0x10, 0x04}},
		},
	}

	var texts []string
	for _, entry := range lst.Entries() {
		texts = append(texts, entry.Text(false))
	}

	assert.Equal([]string{".word 0x1019", ".byte 0x04"}, texts)
}

func TestListerAliases(t *testing.T) {
	assert := assert.New(t)

	segments := []image.Segment{
		{Addr: 0x4400, Data: []byte{
			0x30, 0x41, // MOV @SP+, PC
			0x06, 0x45, // MOV R5, R6 (no alias)
		}},
	}

	plain := &Lister{Segments: segments}
	var texts []string
	for _, entry := range plain.Entries() {
		texts = append(texts, entry.Text(plain.Aliases))
	}
	assert.Equal([]string{"MOV @SP+, PC", "MOV R5, R6"}, texts)

	emulated := &Lister{Segments: segments, Aliases: true}
	texts = nil
	for _, entry := range emulated.Entries() {
		texts = append(texts, entry.Text(emulated.Aliases))
	}
	assert.Equal([]string{"RET", "MOV R5, R6"}, texts)
}

func TestListerWriteTo(t *testing.T) {
	assert := assert.New(t)

	lst := &Lister{
		Segments: []image.Segment{
			{Addr: 0x4400, Data: []byte{0x31, 0x40, 0x00, 0x44, 0xf9, 0x23}},
		},
	}

	var sb strings.Builder
	n, err := lst.WriteTo(&sb)
	assert.NoError(err)
	assert.Equal(int64(sb.Len()), n)

	assert.Equal(""+
		"4400:  31 40 00 44        MOV #17408, SP\n"+
		"4404:  f9 23              JNE $-14\n",
		sb.String())
}

// Breaking out of the entry iteration early must not touch the
// remaining segments.
func TestListerEntriesStop(t *testing.T) {
	assert := assert.New(t)

	lst := &Lister{
		Segments: []image.Segment{
			{Addr: 0x4400, Data: []byte{0x06, 0x45, 0x07, 0x45}},
			{Addr: 0x4800, Data: []byte{0x08, 0x45}},
		},
	}

	count := 0
	for range lst.Entries() {
		count++
		if count == 1 {
			break
		}
	}
	assert.Equal(1, count)
}
