package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Cdayz/simple-lang/lexer"
	"github.com/Cdayz/simple-lang/token"
)

type dumpCmd struct{}

func (*dumpCmd) Name() string { return "dump" }

func (*dumpCmd) Synopsis() string { return "Show the lexed token stream of a source file." }

func (*dumpCmd) Usage() string {
	return `dump:
Show how the lexer performed by dumping the given input file as a stream of tokens.
`
}

func (*dumpCmd) SetFlags(f *flag.FlagSet) {}

func (*dumpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	for _, file := range f.Args() {
		input, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("error reading %s: %s\n", file, err.Error())
			return subcommands.ExitFailure
		}

		l := lexer.New(string(input))
		for {
			tok := l.NextToken()
			fmt.Printf("token: type -> %s, literal -> %s\n", tok.Type, tok.Literal)
			if tok.Type == token.EOF {
				break
			}
		}
	}
	return subcommands.ExitSuccess
}
