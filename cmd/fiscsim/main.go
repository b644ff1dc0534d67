// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/tebeka/atexit"

	"github.com/ezrec/fisc/cpu"
	"github.com/ezrec/fisc/emulator"
	"github.com/ezrec/fisc/internal"
	fio "github.com/ezrec/fisc/io"
)

func main() {
	var disassemble bool
	var verbose bool
	var until string

	flag.BoolVar(&disassemble, "d", false, "Print disassembly listing with each cycle")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&until, "until", "", "Stop when this expression of r0-r3, z, pc and cycle is true")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "USAGE:\t%v <object file> [cycles] [-d]\n", os.Args[0])
		fmt.Fprintf(out, "\tif cycles are unspecified the CPU will run for %d cycles\n", emulator.DEFAULT_CYCLES)
		flag.PrintDefaults()
	}

	args, err := internal.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	switch {
	case len(args) < 1:
		flag.Usage()
		atexit.Exit(2)
	case len(args) > 2:
		atexit.Fatalf("%v: %v: %v", os.Args[0], internal.ErrTooManyArguments, args[2:])
	}

	object := args[0]
	cycles := emulator.DEFAULT_CYCLES
	if len(args) == 2 {
		value, err := strconv.ParseUint(args[1], 10, 31)
		if err != nil {
			atexit.Fatalf("%v: %v: %v", os.Args[0], internal.ErrUnknownArgument, args[1])
		}
		cycles = int(value)
	}

	inf, err := os.Open(object)
	if err != nil {
		atexit.Fatal(&cpu.ErrFileUnreadable{Path: object, Err: err})
	}
	atexit.Register(func() { inf.Close() })

	words, err := fio.ReadObject(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", object, err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Until = until
	emu.Load(words)

	err = emu.Reset()
	if err != nil {
		atexit.Fatal(err)
	}

	err = emu.Run(cycles, func(tr emulator.Trace) {
		fmt.Println(tr)
		if disassemble {
			fmt.Println(tr.Disassembly())
			fmt.Println()
		}
	})
	if err != nil {
		atexit.Fatal(err)
	}

	atexit.Exit(0)
}
