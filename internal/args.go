// Package internal holds helpers shared by the FISC commands.
package internal

import (
	"errors"
	"flag"

	"github.com/ezrec/fisc/translate"
)

var (
	ErrTooManyArguments = errors.New(translate.From("too many arguments"))
	ErrUnknownArgument  = errors.New(translate.From("unknown argument"))
)

// ParseArgs parses a command line where flags may appear before, between
// or after the positional arguments. It returns the positional arguments.
func ParseArgs(flags *flag.FlagSet, args []string) (positional []string, err error) {
	for {
		err = flags.Parse(args)
		if err != nil {
			return
		}
		args = flags.Args()
		if len(args) == 0 {
			return
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
