// Package insn decodes MSP430 machine instructions.
//
// The MSP430 is a 16-bit, word-oriented architecture with sixteen
// registers. R0 is the program counter, R1 the stack pointer, and R2/R3
// double as constant generators: several of their addressing-mode
// encodings stand for small literal constants rather than storage.
//
// Decode reads exactly one instruction (2, 4 or 6 bytes, little-endian)
// from the front of a byte slice and returns a structured Insn record;
// Insn.String renders it as canonical assembly text, and Insn.Alias
// reports the assembler-level emulated form where one exists. Decoding
// is a pure function of the input bytes, so Decode is safe to call
// concurrently on independent buffers.
package insn
