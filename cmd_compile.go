package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Cdayz/simple-lang/bytecode"
	"github.com/Cdayz/simple-lang/checksum"
	"github.com/Cdayz/simple-lang/parser"
)

type compileCmd struct{}

func (*compileCmd) Name() string { return "compile" }

func (*compileCmd) Synopsis() string { return "Compile a source program into bytecode." }

func (*compileCmd) Usage() string {
	return `compile:
compile the given input file into bytecode, skipping the write if the
existing <file>_c is already up to date.
`
}

func (*compileCmd) SetFlags(f *flag.FlagSet) {}

func (*compileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	for _, file := range f.Args() {
		if status := compileFile(file); status != subcommands.ExitSuccess {
			return status
		}
	}
	return subcommands.ExitSuccess
}

// compileFile implements the --compile|-c and `compile` entry points alike
// (see main.go), so both invocation styles share one up-to-date check.
func compileFile(file string) subcommands.ExitStatus {
	source, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("error reading %s: %s\n", file, err.Error())
		return subcommands.ExitFailure
	}

	outPath := file + "_c"
	sum := checksum.Sum(source)

	if existing, err := os.ReadFile(outPath); err == nil && len(existing) >= bytecode.HeaderSize {
		if stored, err := bytecode.DecodeHeader(existing[:bytecode.HeaderSize]); err == nil && stored == sum {
			fmt.Println("up-to-date")
			return subcommands.ExitSuccess
		}
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

	out := append(bytecode.EncodeHeader(sum), body...)
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		fmt.Printf("error writing %s: %s\n", outPath, err.Error())
		return subcommands.ExitFailure
	}

	fmt.Println("updated")
	return subcommands.ExitSuccess
}
