package cpu

import (
	"errors"

	"github.com/ezrec/fisc/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrProgramTooLarge = errors.New(f("program exceeds 64 instructions"))
)

// ErrFileUnreadable indicates the input stream could not be read.
type ErrFileUnreadable struct {
	Path string
	Err  error
}

func (err *ErrFileUnreadable) Error() string {
	if len(err.Path) == 0 {
		return f("unreadable input: %v", err.Err)
	}
	return f("%v: unreadable: %v", err.Path, err.Err)
}

func (err *ErrFileUnreadable) Unwrap() error {
	return err.Err
}

// ErrLabelDuplicate indicates a label was defined twice.
type ErrLabelDuplicate struct {
	Label   string
	Address int
}

func (err *ErrLabelDuplicate) Error() string {
	return f("label %v duplicated at address %d", err.Label, err.Address)
}

// ErrLabelMissing indicates a branch to an undefined label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrNameInvalid indicates a token that is neither a mnemonic nor a register.
type ErrNameInvalid string

func (en ErrNameInvalid) Error() string {
	return f("'%v' is not an opcode or register", string(en))
}

// ErrPcRange indicates an instruction fetch past the end of the program.
type ErrPcRange struct {
	Pc     int
	Length int
}

func (err *ErrPcRange) Error() string {
	return f("pc %02X past end of program (%v instructions)", err.Pc, err.Length)
}

// ErrSyntax indicates the source line of an assembler error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
