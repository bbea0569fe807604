package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Cdayz/simple-lang/bytecode"
	"github.com/Cdayz/simple-lang/parser"
	"github.com/Cdayz/simple-lang/vm"
)

type runCmd struct {
	debug bool
}

func (*runCmd) Name() string { return "run" }

func (*runCmd) Synopsis() string { return "Compile and immediately execute a source program." }

func (*runCmd) Usage() string {
	return `run:
Run subcommand compiles the given source program and then executes it
immediately, without writing an intermediate bytecode file.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.debug, "debug", false, "trace each executed instruction (equivalent to DEBUG=1)")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.debug {
		os.Setenv("DEBUG", "1")
	}

	for _, file := range f.Args() {
		source, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("error reading %s: %s\n", file, err.Error())
			return subcommands.ExitFailure
		}

		ops, err := parser.New().Parse(string(source))
		if err != nil {
			fmt.Println(err.Error())
			return subcommands.ExitFailure
		}

		body, err := bytecode.EncodeOperations(ops)
		if err != nil {
			fmt.Println(err.Error())
			return subcommands.ExitFailure
		}

		if _, err := vm.Execute(body); err != nil {
			fmt.Println("error running file:", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
