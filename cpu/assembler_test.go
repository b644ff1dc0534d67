package cpu

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; count down",
		"start:              ; label-only",
		"\tnot r1 r0         ; r1 = 0xff",
		"loop:\tadd r2 r1 r1",
		"\tand r3 r2 r0",
		"",
		"\tbnz loop",
		"end:",
		"\tBNZ start",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{3, 0, "", "not r1 r0", 0x81},
		{4, 1, "loop", "add r2 r1 r1", 0x16},
		{5, 2, "", "and r3 r2 r0", 0x63},
		{7, 3, "", "bnz loop", 0xc1},
		{9, 4, "", "BNZ start", 0xc0},
	}
	assert.Equal(expected, prog.Opcodes)

	for label, address := range map[string]int{"start": 0, "loop": 1, "end": 4} {
		got, ok := prog.Symbols.Lookup(label)
		assert.True(ok, label)
		assert.Equal(address, got, label)
	}
	assert.Equal(3, prog.Symbols.Len())

	assert.Equal([]Word{0x81, 0x16, 0x63, 0xc1, 0xc0}, prog.Words())
}

func TestAssembler_Reuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	first, err := asm.Parse(strings.NewReader("a: add r0 r0 r0\nbnz a"))
	assert.NoError(err)

	second, err := asm.Parse(strings.NewReader("b: not r0 r0\na: add r0 r0 r0\nbnz a"))
	assert.NoError(err)

	assert.Equal([]Word{0x00, 0xc0}, first.Words())
	assert.Equal([]Word{0x80, 0x00, 0xc1}, second.Words())
	assert.Equal(1, first.Symbols.Len())
	assert.Equal(2, second.Symbols.Len())
}

func TestAssemblerLabelOnly(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// A label-only line names the next instruction, not the previous one.
	prog, err := asm.Parse(strings.NewReader("not r0 r0\nnext:\n\n; comment\nadd r1 r0 r0\nbnz next"))
	assert.NoError(err)
	address, ok := prog.Symbols.Lookup("next")
	assert.True(ok)
	assert.Equal(1, address)
	assert.Equal(Word(0xc1), prog.Words()[2])

	// Repeated label-only lines are not checked; the first wins.
	prog, err = asm.Parse(strings.NewReader("a:\nadd r0 r0 r0\na:\nbnz a"))
	assert.NoError(err)
	address, _ = prog.Symbols.Lookup("a")
	assert.Equal(0, address)
	assert.Equal([]Word{0x00, 0xc0}, prog.Words())

	// A trailing label names the address after the last instruction.
	prog, err = asm.Parse(strings.NewReader("bnz end\nend:"))
	assert.NoError(err)
	assert.Equal([]Word{0xc1}, prog.Words())
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		lineno int
		err    error
	}){
		{"duplicate", "a: add r0 r0 r0\na: and r0 r0 r0", 2, &ErrLabelDuplicate{Label: "a", Address: 0}},
		{"duplicate-after-label-only", "a:\na: add r0 r0 r0", 2, &ErrLabelDuplicate{Label: "a", Address: 0}},
		{"unresolved", "add r0 r0 r0\nbnz nowhere", 2, ErrLabelMissing("nowhere")},
		{"label-case", "Loop: add r0 r0 r0\nbnz loop", 2, ErrLabelMissing("loop")},
		{"mnemonic", "sub r0 r1 r2", 1, ErrNameInvalid("sub")},
		{"register", "add r4 r0 r0", 1, ErrNameInvalid("r4")},
		{"not-register", "\n\nnot r0 loop", 3, ErrNameInvalid("loop")},
		{"missing", "add r0 r1", 1, ErrOperandMissing},
		{"bnz-missing", "bnz", 1, ErrOperandMissing},
		{"extra", "not r0 r1 r2", 1, ErrOperandExtra},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.source))
		assert.Nil(prog, entry.name)
		assert.Error(err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
			assert.Equal(entry.err, syntax.Err, entry.name)
		}
	}
}

func TestAssemblerErrorKinds(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("x: add r0 r0 r0\nx: add r0 r0 r0"))
	var dup *ErrLabelDuplicate
	assert.True(errors.As(err, &dup))
	assert.Equal("x", dup.Label)

	_, err = asm.Parse(strings.NewReader("bnz y"))
	var missing ErrLabelMissing
	assert.True(errors.As(err, &missing))
	assert.Equal(ErrLabelMissing("y"), missing)

	_, err = asm.Parse(strings.NewReader("mul r0 r0 r0"))
	var name ErrNameInvalid
	assert.True(errors.As(err, &name))

	_, err = asm.Parse(strings.NewReader("add r0 r0 r0 r0"))
	assert.ErrorIs(err, ErrOperandExtra)
}

func TestAssemblerTooLarge(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	lines := make([]string, ADDRESS_LIMIT)
	for n := range lines {
		lines[n] = "add r0 r0 r0"
	}
	prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	assert.NoError(err)
	assert.Equal(ADDRESS_LIMIT, len(prog.Words()))

	lines = append(lines, "add r0 r0 r0")
	_, err = asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	assert.ErrorIs(err, ErrProgramTooLarge)
}

func TestAssemblerUnreadable(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	boom := errors.New("boom")
	_, err := asm.Parse(iotest.ErrReader(boom))

	var unreadable *ErrFileUnreadable
	assert.True(errors.As(err, &unreadable))
	assert.ErrorIs(err, boom)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	symbols := &SymbolTable{}
	assert.NoError(symbols.Insert("here", 12))

	word, err := Encode([]string{"bnz", "here"}, symbols)
	assert.NoError(err)
	assert.Equal(Word(0xcc), word)

	// Encoding has no hidden state.
	again, err := Encode([]string{"bnz", "here"}, symbols)
	assert.NoError(err)
	assert.Equal(word, again)

	_, err = Encode(nil, symbols)
	assert.Equal(ErrOperandMissing, err)

	_, err = Encode([]string{"bnz", "HERE"}, symbols)
	assert.Equal(ErrLabelMissing("HERE"), err)
}
