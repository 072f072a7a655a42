// Package listing renders whole program images as assembly listings.
//
// The lister performs a linear sweep only: it decodes at every word
// boundary, advancing by each instruction's encoded length, and makes
// no attempt to follow control flow or resolve symbols. Words that
// decode to no instruction are kept as .word directives so a scan
// never stalls on data embedded in code.
package listing

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/msp430/image"
	"github.com/ezrec/msp430/insn"
	"github.com/ezrec/msp430/internal"
)

// Entry is one listing line: a decoded instruction, or a .word/.byte
// data fallback where decoding failed.
type Entry struct {
	Addr  uint16
	Bytes []byte
	Insn  insn.Insn
	Known bool // false for data fallbacks
}

// Text renders the entry. With aliases set, instructions with an
// assembler-level emulated form render as that form.
func (e Entry) Text(aliases bool) string {
	if e.Known {
		if aliases {
			if alias := e.Insn.Alias(); alias != "" {
				return alias
			}
		}
		return e.Insn.String()
	}
	if len(e.Bytes) >= 2 {
		return fmt.Sprintf(".word 0x%02X%02X", e.Bytes[1], e.Bytes[0])
	}
	return fmt.Sprintf(".byte 0x%02X", e.Bytes[0])
}

// Lister sweeps program image segments into listing entries.
type Lister struct {
	Segments []image.Segment
	Aliases  bool // If set, renders emulated instruction forms.
}

// Entries returns an iterator over all listing entries, keyed by
// address, across all segments in order.
func (l *Lister) Entries() iter.Seq2[uint16, Entry] {
	seqs := make([]iter.Seq2[uint16, Entry], 0, len(l.Segments))
	for _, seg := range l.Segments {
		seqs = append(seqs, sweep(seg))
	}
	return internal.IterSeq2Concat(seqs...)
}

// sweep decodes one segment front to back. Unknown and reserved words
// fall back to a 2-byte data entry; a truncated tail falls back to
// whatever bytes remain.
func sweep(seg image.Segment) iter.Seq2[uint16, Entry] {
	return func(yield func(addr uint16, entry Entry) bool) {
		data := seg.Data
		pos := 0
		for pos < len(data) {
			addr := seg.Addr + uint16(pos)

			var entry Entry
			var size int
			in, err := insn.Decode(data[pos:])
			if err == nil {
				size = in.Len()
				entry = Entry{Addr: addr, Bytes: data[pos : pos+size], Insn: in, Known: true}
			} else {
				size = min(2, len(data)-pos)
				entry = Entry{Addr: addr, Bytes: data[pos : pos+size]}
			}

			if !yield(addr, entry) {
				return
			}
			pos += size
		}
	}
}

// WriteTo writes the full listing, one address-annotated line per
// entry.
func (l *Lister) WriteTo(w io.Writer) (n int64, err error) {
	for _, entry := range l.Entries() {
		var written int
		written, err = fmt.Fprintf(w, "%04x:  %-17s  %s\n",
			entry.Addr, hexBytes(entry.Bytes), entry.Text(l.Aliases))
		n += int64(written)
		if err != nil {
			return
		}
	}
	return
}

func hexBytes(data []byte) string {
	var sb strings.Builder
	for n, b := range data {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}
