// Package cpu implements the processor and assembler for the FISC system.
//
// FISC words are 8 bits wide. The top two bits select one of four
// operations (add, and, not, bnz) and the rest select among four 8-bit
// registers (r0-r3) or, for bnz, a 6-bit branch target. The processor
// keeps a zero flag, set by every add, and and not, which bnz tests.
//
// The assembler is a two pass assembler: the first pass assigns addresses
// to instructions and labels, the second encodes each instruction.
package cpu
