// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/msp430/image"
	"github.com/ezrec/msp430/listing"
)

func main() {
	var txt string
	var bin string
	var base uint
	var aliases bool
	var output string

	flag.StringVar(&txt, "t", "", "TI-TXT image to disassemble")
	flag.StringVar(&bin, "b", "", "raw binary image to disassemble")
	flag.UintVar(&base, "a", 0, "base address for raw binary images")
	flag.BoolVar(&aliases, "e", false, "render emulated instruction forms")
	flag.StringVar(&output, "o", "-", "listing output")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if (txt == "") == (bin == "") {
		log.Fatalf("%v: exactly one of -t or -b is required", os.Args[0])
	}
	if base > 0xffff {
		log.Fatalf("%v: base address %#x out of range", os.Args[0], base)
	}

	var segments []image.Segment

	if txt != "" {
		inf, err := os.Open(txt)
		if err != nil {
			log.Fatalf("%v: %v", txt, err)
		}
		defer inf.Close()

		segments, err = image.LoadTXT(inf)
		if err != nil {
			log.Fatalf("%v: %v", txt, err)
		}
	} else {
		inf, err := os.Open(bin)
		if err != nil {
			log.Fatalf("%v: %v", bin, err)
		}
		defer inf.Close()

		segments, err = image.LoadBin(inf, uint16(base))
		if err != nil {
			log.Fatalf("%v: %v", bin, err)
		}
	}

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	lst := &listing.Lister{Segments: segments, Aliases: aliases}
	if _, err := lst.WriteTo(out); err != nil {
		log.Fatal(err)
	}
}
