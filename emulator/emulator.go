// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs FISC object code for a budget of cycles.
package emulator

import (
	"github.com/ezrec/fisc/cpu"
)

const (
	DEFAULT_CYCLES = 20 // Cycles run when no budget is given.
)

// Emulator state. CPU + decoded program.
type Emulator struct {
	Verbose  bool              // If set, enables verbose logging.
	*cpu.Cpu                   // Reference to the CPU simulation.
	Program  []cpu.Instruction // Decoded program, indexed by address.

	// Until is an optional Starlark expression evaluated after every
	// cycle. When it is true the run stops.
	Until string

	Cycle int // Cycles executed since the last reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Load decodes a word stream into the emulator's program.
func (emu *Emulator) Load(words []cpu.Word) {
	emu.Program = cpu.DecodeAll(words)
}

// Reset the emulator state, and check the stop condition.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cycle = 0

	if len(emu.Until) != 0 {
		_, err = until(emu.Until, emu.trace(cpu.Instruction{}))
	}

	return
}

func (emu *Emulator) trace(inst cpu.Instruction) Trace {
	return Trace{
		Cycle:       emu.Cycle,
		State:       emu.Cpu.State,
		Instruction: inst,
	}
}

// Tick performs a single cycle of the emulator. done is set when the
// stop condition is met.
func (emu *Emulator) Tick() (tr Trace, done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	cycle := emu.Cycle + 1
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Cycle: cycle, Pc: pc, Err: err}
		}
	}()

	inst, err := emu.Cpu.Tick(emu.Program)
	if err != nil {
		return
	}

	emu.Cycle = cycle
	tr = emu.trace(inst)

	if len(emu.Until) != 0 {
		done, err = until(emu.Until, tr)
	}

	return
}

// Run performs up to cycles ticks, reporting the trace of each. Running
// past the end of the program stops with an error.
func (emu *Emulator) Run(cycles int, report func(tr Trace)) (err error) {
	for range cycles {
		var tr Trace
		var done bool
		tr, done, err = emu.Tick()
		if err != nil {
			return
		}
		if report != nil {
			report(tr)
		}
		if done {
			break
		}
	}

	return
}
