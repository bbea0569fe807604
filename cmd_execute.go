package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Cdayz/simple-lang/bytecode"
	"github.com/Cdayz/simple-lang/vm"
)

type executeCmd struct {
	debug bool
}

func (*executeCmd) Name() string { return "execute" }

func (*executeCmd) Synopsis() string { return "Execute a compiled bytecode file." }

func (*executeCmd) Usage() string {
	return `execute:
Execute the bytecode contained in the given input file.
`
}

func (c *executeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.debug, "debug", false, "trace each executed instruction (equivalent to DEBUG=1)")
}

func (c *executeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.debug {
		os.Setenv("DEBUG", "1")
	}

	for _, file := range f.Args() {
		if status := executeFile(file); status != subcommands.ExitSuccess {
			return status
		}
	}
	return subcommands.ExitSuccess
}

// executeFile implements the --execute|-e and `execute` entry points alike.
func executeFile(file string) subcommands.ExitStatus {
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("error reading %s: %s\n", file, err.Error())
		return subcommands.ExitFailure
	}

	if len(data) < bytecode.HeaderSize {
		fmt.Println("Unable to execute bytecode file.")
		return subcommands.ExitFailure
	}

	if _, err := bytecode.DecodeHeader(data[:bytecode.HeaderSize]); err != nil {
		fmt.Println("Unable to execute bytecode file.")
		return subcommands.ExitFailure
	}

	if _, err := vm.Execute(data[bytecode.HeaderSize:]); err != nil {
		fmt.Println("error running file:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
