package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fisc/cpu"
)

func TestWriteListing(t *testing.T) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader("start:\n\tnot r1 r0\nloop:\tadd r2 r1 r1\n\tbnz loop\n"))
	assert.NoError(err)

	out := &bytes.Buffer{}
	err = WriteListing(out, prog)
	assert.NoError(err)

	text := out.String()
	assert.Contains(text, "LABEL LIST")
	assert.Contains(text, "MACHINE PROGRAM")
	assert.Contains(text, "start")
	assert.Contains(text, "loop")
	assert.Contains(text, "add r2 r1 r1")
	assert.Contains(text, "C1")
	assert.Contains(text, "81")
	assert.Less(strings.Index(text, "start"), strings.Index(text, "MACHINE PROGRAM"))
}
