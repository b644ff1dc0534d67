package emulator

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// until evaluates a Starlark stop condition against a trace.
//
// The expression sees the registers as r0-r3, the zero flag as z, the
// program counter as pc and the cycle count as cycle.
func until(expr string, tr Trace) (stop bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrUntil{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "until"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"r0":    starlark.MakeInt(int(tr.State.Register[0])),
		"r1":    starlark.MakeInt(int(tr.State.Register[1])),
		"r2":    starlark.MakeInt(int(tr.State.Register[2])),
		"r3":    starlark.MakeInt(int(tr.State.Register[3])),
		"z":     starlark.Bool(tr.State.Zero),
		"pc":    starlark.MakeInt(tr.State.Pc),
		"cycle": starlark.MakeInt(tr.Cycle),
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "until", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrUntilValue
		return
	}

	stop = bool(st_rc.Truth())

	return
}
