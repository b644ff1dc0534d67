package emulator

import (
	"errors"

	"github.com/ezrec/fisc/translate"
)

var f = translate.From

var (
	ErrUntilValue = errors.New(f("until expression has no value"))
)

// ErrRuntime indicates the cycle and program counter of a runtime error.
type ErrRuntime struct {
	Cycle int
	Pc    int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("cycle %d pc %02X %v", err.Cycle, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrUntil indicates a stop condition that could not be evaluated.
type ErrUntil struct {
	Expr string
	Err  error
}

func (err *ErrUntil) Error() string {
	return f("until '%v': %v", err.Expr, err.Err)
}

func (err *ErrUntil) Unwrap() error {
	return err.Err
}
