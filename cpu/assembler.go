// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
)

// Opcode represents a line of assembled code with its address and encoding.
type Opcode struct {
	LineNo  int    // Source line number.
	Address int    // Instruction address.
	Label   string // Label defined on the source line, if any.
	Body    string // Mnemonic and operands.
	Word    Word   // Encoded instruction, set by the second pass.
}

// Assembler is a two pass assembler for FISC.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of addressed opcodes.

	Label SymbolTable // Map of jump labels to instruction addresses.
}

// operandCount is the number of operands each opcode takes.
var operandCount = [...]int{
	OP_ADD: 3,
	OP_AND: 3,
	OP_NOT: 2,
	OP_BNZ: 1,
}

// ReadLines splits an input stream into parsed source lines.
func ReadLines(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno += 1
		lines = append(lines, ParseLine(lineno, scanner.Text()))
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrFileUnreadable{Err: err}
		lines = nil
	}

	return
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	err = asm.Resolve(lines)
	if err != nil {
		return
	}

	err = asm.Link()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Symbols: asm.Label,
	}

	return
}

// Resolve is the first pass. It assigns an address to every line with an
// instruction body and records the address of every label.
//
// A label on a line with no body names the next instruction. Only labels
// on instruction lines are checked for redefinition; a repeated label on
// a label-only line keeps its first address.
func (asm *Assembler) Resolve(lines []Line) (err error) {
	var line Line

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Body, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Label = SymbolTable{}

	address := 0
	for _, line = range lines {
		if asm.Verbose {
			log.Printf("%v: %02x: %v: %v\n", line.LineNo, address, line.Label, line.Body)
		}

		if line.Empty() {
			if len(line.Label) != 0 && !asm.Label.Exists(line.Label) {
				err = asm.Label.Insert(line.Label, address)
				if err != nil {
					return
				}
			}
			continue
		}

		if len(line.Label) != 0 {
			err = asm.Label.Insert(line.Label, address)
			if err != nil {
				return
			}
		}

		if address >= ADDRESS_LIMIT {
			err = ErrProgramTooLarge
			return
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:  line.LineNo,
			Address: address,
			Label:   line.Label,
			Body:    line.Body,
		})
		address++
	}

	return
}

// Link is the second pass. It encodes every resolved opcode.
func (asm *Assembler) Link() (err error) {
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		line := Line{Body: op.Body}
		op.Word, err = Encode(line.Words(), &asm.Label)
		if err != nil {
			err = &ErrSyntax{LineNo: op.LineNo, Line: op.Body, Err: err}
			return
		}

		if asm.Verbose {
			log.Printf("%02x: %02X %v\n", op.Address, uint8(op.Word), op.Body)
		}
	}

	return
}

// registers looks up a list of register names.
func registers(words []string) (regs []CodeReg, err error) {
	regs = make([]CodeReg, len(words))
	for n, word := range words {
		var code uint8
		code, err = CodeOf(word)
		if err != nil {
			return
		}
		regs[n] = CodeReg(code)
	}
	return
}

// Encode encodes the words of an instruction body. The first word is the
// mnemonic, the rest are its operands. Branch labels are resolved against
// the symbol table.
func Encode(words []string, symbols *SymbolTable) (word Word, err error) {
	if len(words) == 0 {
		err = ErrOperandMissing
		return
	}

	code, err := CodeOf(words[0])
	if err != nil {
		return
	}

	op := CodeOp(code)
	args := words[1:]

	switch {
	case len(args) < operandCount[op]:
		err = ErrOperandMissing
		return
	case len(args) > operandCount[op]:
		err = ErrOperandExtra
		return
	}

	switch op {
	case OP_ADD, OP_AND:
		var regs []CodeReg
		regs, err = registers(args)
		if err != nil {
			return
		}
		word = makeAlu(op, regs[0], regs[1], regs[2])
	case OP_NOT:
		var regs []CodeReg
		regs, err = registers(args)
		if err != nil {
			return
		}
		word = MakeWordNot(regs[0], regs[1])
	case OP_BNZ:
		address, ok := symbols.Lookup(args[0])
		if !ok {
			err = ErrLabelMissing(args[0])
			return
		}
		word = MakeWordBnz(address)
	}

	return
}
