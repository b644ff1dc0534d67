package cpu

import (
	"fmt"
	"strings"
)

const (
	WORD_OPCODE_SHIFT = 6    // Position of the opcode field.
	WORD_ADDRESS_MASK = 0x3f // Mask of the BNZ target field.
	ADDRESS_LIMIT     = 64   // Number of addressable instruction slots.
	ADDRESS_WRAP      = 63   // Program counter value that wraps to 0.
)

// CodeOp is an opcode.
type CodeOp int

const (
	OP_ADD = CodeOp(0) // add
	OP_AND = CodeOp(1) // and
	OP_NOT = CodeOp(2) // not
	OP_BNZ = CodeOp(3) // bnz
)

var opNames = [...]string{"add", "and", "not", "bnz"}

func (op CodeOp) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("CodeOp(%d)", int(op))
	}
	return opNames[op]
}

// CodeReg is a register selector.
type CodeReg int

const (
	REG_R0 = CodeReg(0) // r0
	REG_R1 = CodeReg(1) // r1
	REG_R2 = CodeReg(2) // r2
	REG_R3 = CodeReg(3) // r3
)

var regNames = [...]string{"r0", "r1", "r2", "r3"}

func (reg CodeReg) String() string {
	if reg < 0 || int(reg) >= len(regNames) {
		return fmt.Sprintf("CodeReg(%d)", int(reg))
	}
	return regNames[reg]
}

// nameMap maps mnemonic and register names onto their 2-bit codes.
// Opcodes and registers share the same code space.
var nameMap = map[string]uint8{
	"add": 0, "r0": 0,
	"and": 1, "r1": 1,
	"not": 2, "r2": 2,
	"bnz": 3, "r3": 3,
}

// CodeOf returns the 2-bit code of a mnemonic or register name.
// Matching is case-insensitive.
func CodeOf(name string) (code uint8, err error) {
	code, ok := nameMap[strings.ToLower(name)]
	if !ok {
		err = ErrNameInvalid(name)
	}
	return
}

// Word is a single encoded 8-bit instruction.
type Word uint8

// MakeWordAdd creates an ADD instruction: regD = regN + regM.
func MakeWordAdd(regD, regN, regM CodeReg) Word {
	return makeAlu(OP_ADD, regD, regN, regM)
}

// MakeWordAnd creates an AND instruction: regD = regN & regM.
func MakeWordAnd(regD, regN, regM CodeReg) Word {
	return makeAlu(OP_AND, regD, regN, regM)
}

// MakeWordNot creates a NOT instruction: regD = ^regN.
func MakeWordNot(regD, regN CodeReg) Word {
	return makeAlu(OP_NOT, regD, regN, REG_R0)
}

// MakeWordBnz creates a BNZ instruction to a 6-bit address.
func MakeWordBnz(address int) Word {
	return Word((uint8(OP_BNZ) << WORD_OPCODE_SHIFT) | (uint8(address) & WORD_ADDRESS_MASK))
}

func makeAlu(op CodeOp, regD, regN, regM CodeReg) Word {
	return Word((uint8(op&3) << 6) | (uint8(regN&3) << 4) | (uint8(regM&3) << 2) | (uint8(regD&3) << 0))
}

// Op returns the opcode from the instruction word.
func (word Word) Op() CodeOp {
	return CodeOp((word >> WORD_OPCODE_SHIFT) & 0x3)
}

// AluDecode returns the destination and source registers of an ADD or AND.
func (word Word) AluDecode() (regD, regN, regM CodeReg) {
	regD = CodeReg((word >> 0) & 0x3)
	regN = CodeReg((word >> 4) & 0x3)
	regM = CodeReg((word >> 2) & 0x3)
	return
}

// NotDecode returns the destination and source registers of a NOT.
func (word Word) NotDecode() (regD, regN CodeReg) {
	regD = CodeReg((word >> 0) & 0x3)
	regN = CodeReg((word >> 4) & 0x3)
	return
}

// BnzDecode returns the branch target of a BNZ.
func (word Word) BnzDecode() (address int) {
	return int(word & WORD_ADDRESS_MASK)
}

// String returns the disassembly of the word.
func (word Word) String() string {
	return Decode(0, word).String()
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Address int     // Position in the word stream.
	Word    Word    // Encoded form.
	Op      CodeOp  // Opcode.
	RegD    CodeReg // Destination register (add, and, not).
	RegN    CodeReg // First source register (add, and, not).
	RegM    CodeReg // Second source register (add, and).
	Target  int     // Branch target (bnz).
}

// Decode decodes a word found at an address. Every byte value decodes.
func Decode(address int, word Word) (inst Instruction) {
	inst = Instruction{
		Address: address,
		Word:    word,
		Op:      word.Op(),
	}

	switch inst.Op {
	case OP_ADD, OP_AND:
		inst.RegD, inst.RegN, inst.RegM = word.AluDecode()
	case OP_NOT:
		inst.RegD, inst.RegN = word.NotDecode()
	case OP_BNZ:
		inst.Target = word.BnzDecode()
	}

	return
}

// DecodeAll decodes a word stream, addressing each word by its position.
func DecodeAll(words []Word) (insts []Instruction) {
	insts = make([]Instruction, len(words))
	for n, word := range words {
		insts[n] = Decode(n, word)
	}
	return
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() (out string) {
	switch inst.Op {
	case OP_ADD, OP_AND:
		out = fmt.Sprintf("%v %v %v %v", inst.Op, inst.RegD, inst.RegN, inst.RegM)
	case OP_NOT:
		out = fmt.Sprintf("%v %v %v", inst.Op, inst.RegD, inst.RegN)
	case OP_BNZ:
		out = fmt.Sprintf("%v %d", inst.Op, inst.Target)
	}

	return
}
