// Package image loads MSP430 program images.
//
// Two container formats are supported: raw binaries, whose bytes land
// at a caller-supplied base address, and the TI-TXT hex format emitted
// by TI toolchains ("@addr" section headers, whitespace-separated hex
// bytes, and a closing "q").
package image

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Segment is a contiguous run of image bytes at an address.
type Segment struct {
	Addr uint16
	Data []byte
}

// LoadBin reads a raw binary image and places it at base. The image
// must fit the 64K address space.
func LoadBin(r io.Reader, base uint16) (segments []Segment, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}
	if len(data) == 0 {
		return
	}
	if int(base)+len(data) > 0x10000 {
		return nil, ErrImageSize(len(data))
	}
	return []Segment{{Addr: base, Data: data}}, nil
}

// LoadTXT reads a TI-TXT image. Each "@addr" header opens a segment at
// that (hex) address; subsequent lines hold hex bytes until the next
// header or the closing "q". Every segment must fit the 64K address
// space.
func LoadTXT(r io.Reader) (segments []Segment, err error) {
	scanner := bufio.NewScanner(r)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "q" || line == "Q":
			return segments, scanner.Err()
		case strings.HasPrefix(line, "@"):
			var addr uint64
			addr, err = strconv.ParseUint(line[1:], 16, 16)
			if err != nil {
				return nil, ErrSyntax{LineNo: lineno, Line: line, Err: err}
			}
			segments = append(segments, Segment{Addr: uint16(addr)})
		default:
			if len(segments) == 0 {
				return nil, ErrSyntax{LineNo: lineno, Line: line, Err: ErrNoSection}
			}
			seg := &segments[len(segments)-1]
			for _, field := range strings.Fields(line) {
				var b uint64
				b, err = strconv.ParseUint(field, 16, 8)
				if err != nil {
					return nil, ErrSyntax{LineNo: lineno, Line: line, Err: err}
				}
				seg.Data = append(seg.Data, byte(b))
			}
			if int(seg.Addr)+len(seg.Data) > 0x10000 {
				return nil, ErrSyntax{LineNo: lineno, Line: line, Err: ErrImageSize(len(seg.Data))}
			}
		}
	}
	return segments, scanner.Err()
}
