package io

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/fisc/cpu"
)

// WriteListing writes the label list and machine program of an
// assembled program.
func WriteListing(output io.Writer, prog *cpu.Program) (err error) {
	labels := table.NewWriter()
	labels.SetTitle("LABEL LIST")
	labels.AppendHeader(table.Row{"Label", "Address"})
	for label, address := range prog.Symbols.All() {
		labels.AppendRow(table.Row{label, fmt.Sprintf("%02X", address)})
	}

	machine := table.NewWriter()
	machine.SetTitle("MACHINE PROGRAM")
	machine.AppendHeader(table.Row{"Address", "Word", "Instruction"})
	for _, op := range prog.Opcodes {
		machine.AppendRow(table.Row{
			fmt.Sprintf("%02X", op.Address),
			fmt.Sprintf("%02X", uint8(op.Word)),
			op.Body,
		})
	}

	_, err = fmt.Fprintf(output, "%v\n%v\n", labels.Render(), machine.Render())

	return
}
