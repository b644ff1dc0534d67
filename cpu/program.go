package cpu

import (
	"iter"
)

// Program is the output of the assembler.
type Program struct {
	Opcodes []Opcode
	Symbols SymbolTable
}

// Opcode returns the opcode at an address, or nil.
func (prog *Program) Opcode(address int) *Opcode {
	if address < 0 || address >= len(prog.Opcodes) {
		return nil
	}
	return &prog.Opcodes[address]
}

// Words returns the encoded instruction stream, in address order.
func (prog *Program) Words() (words []Word) {
	for _, word := range prog.Codes() {
		words = append(words, word)
	}

	return
}

// Codes iterates over the address and word of every instruction.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(address int, word Word) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Address, op.Word) {
				return
			}
		}
	}
}

// Instructions returns the decoded instruction stream.
func (prog *Program) Instructions() []Instruction {
	return DecodeAll(prog.Words())
}
