// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/fisc/cpu"
	"github.com/ezrec/fisc/internal"
	fio "github.com/ezrec/fisc/io"
)

func main() {
	var listing bool
	var verbose bool

	flag.BoolVar(&listing, "l", false, "Print listing to standard error")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "USAGE:  %v <source file> <object file> [-l]\n", os.Args[0])
		flag.PrintDefaults()
	}

	args, err := internal.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	switch {
	case len(args) < 2:
		flag.Usage()
		atexit.Exit(2)
	case len(args) > 2:
		atexit.Fatalf("%v: %v: %v", os.Args[0], internal.ErrTooManyArguments, args[2:])
	}

	source := args[0]
	object := args[1]

	inf, err := os.Open(source)
	if err != nil {
		atexit.Fatal(&cpu.ErrFileUnreadable{Path: source, Err: err})
	}
	atexit.Register(func() { inf.Close() })

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	ouf, err := os.Create(object)
	if err != nil {
		atexit.Fatalf("%v: %v", object, err)
	}

	// A partially written object file is removed on failure.
	finalized := false
	atexit.Register(func() {
		ouf.Close()
		if !finalized {
			os.Remove(object)
		}
	})

	err = fio.WriteObject(ouf, prog.Words())
	if err == nil {
		err = ouf.Close()
	}
	if err != nil {
		atexit.Fatalf("%v: %v", object, err)
	}
	finalized = true

	if listing {
		err = fio.WriteListing(os.Stderr, prog)
		if err != nil {
			atexit.Fatal(err)
		}
	}

	atexit.Exit(0)
}
