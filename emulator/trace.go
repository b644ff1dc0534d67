package emulator

import (
	"fmt"

	"github.com/ezrec/fisc/cpu"
)

// Trace is the state of the emulator after a single cycle.
type Trace struct {
	Cycle       int             // Cycle count, starting at 1.
	State       cpu.State       // CPU state after the cycle.
	Instruction cpu.Instruction // Instruction executed during the cycle.
}

// String returns the state line of the trace.
func (tr Trace) String() string {
	st := tr.State
	z := 0
	if st.Zero {
		z = 1
	}
	return fmt.Sprintf("Cycle:%d State:PC:%02X Z:%d R0: %02X R1: %02X R2: %02X R3: %02X",
		tr.Cycle, st.Pc, z, st.Register[0], st.Register[1], st.Register[2], st.Register[3])
}

// Disassembly returns the disassembly line of the trace.
func (tr Trace) Disassembly() string {
	return fmt.Sprintf("Disassembly: %v", tr.Instruction)
}
