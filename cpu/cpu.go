package cpu

import (
	"fmt"
	"log"
)

// State is the architectural state of the processor.
type State struct {
	Register [4]uint8 // Register bank, r0-r3.
	Zero     bool     // Set when the last add, and or not wrote zero.
	Pc       int      // Program counter.
}

// Cpu is the simulation context for the FISC processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	State

	Ticks int // CPU ticks counter.
}

// NewCpu creates a new CPU with cleared state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("%5s: %v\n", "z", cpu.Zero)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("%5s: %02X\n", CodeReg(n), val)
	}

	return
}

// Reset the CPU state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.State = State{}
	cpu.Ticks = 0
}

// Fetch fetches the instruction at the program counter.
func (cpu *Cpu) Fetch(program []Instruction) (inst Instruction, err error) {
	if cpu.Pc < 0 || cpu.Pc >= len(program) {
		err = &ErrPcRange{Pc: cpu.Pc, Length: len(program)}
		return
	}

	inst = program[cpu.Pc]

	return
}

// Tick executes a single CPU instruction cycle, returning the instruction
// that was executed.
func (cpu *Cpu) Tick(program []Instruction) (inst Instruction, err error) {
	inst, err = cpu.Fetch(program)
	if err != nil {
		return
	}

	cpu.Execute(inst)

	return
}

// Run executes a fixed number of cycles. Fetching past the end of the
// program stops the run.
func (cpu *Cpu) Run(program []Instruction, cycles int) (err error) {
	for range cycles {
		_, err = cpu.Tick(program)
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(inst Instruction) {
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, inst)
	}

	reg := &cpu.Register

	switch inst.Op {
	case OP_ADD:
		reg[inst.RegD] = reg[inst.RegN] + reg[inst.RegM]
		cpu.Zero = reg[inst.RegD] == 0
		cpu.Pc++
	case OP_AND:
		reg[inst.RegD] = reg[inst.RegN] & reg[inst.RegM]
		cpu.Zero = reg[inst.RegD] == 0
		cpu.Pc++
	case OP_NOT:
		reg[inst.RegD] = ^reg[inst.RegN]
		cpu.Zero = reg[inst.RegD] == 0
		cpu.Pc++
	case OP_BNZ:
		if !cpu.Zero {
			cpu.Pc = inst.Target
		} else {
			cpu.Pc++
		}
	}

	// Address 63 is never fetched, even as a branch target.
	if cpu.Pc == ADDRESS_WRAP {
		cpu.Pc = 0
	}

	cpu.Ticks += 1
}
