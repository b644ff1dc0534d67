package io

import (
	"github.com/ezrec/fisc/translate"
)

var f = translate.From

// ErrObjectMalformed indicates an object file that is not a FISC object.
type ErrObjectMalformed struct {
	LineNo int
	Line   string
}

func (err *ErrObjectMalformed) Error() string {
	if err.LineNo <= 1 {
		return f("object file header '%v' is not '%v'", err.Line, OBJECT_HEADER)
	}
	return f("object file line %d '%v' is not a hex word", err.LineNo, err.Line)
}
