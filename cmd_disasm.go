package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Cdayz/simple-lang/bytecode"
	"github.com/Cdayz/simple-lang/register"
)

type disasmCmd struct{}

func (*disasmCmd) Name() string { return "disasm" }

func (*disasmCmd) Synopsis() string { return "Disassemble a compiled bytecode file." }

func (*disasmCmd) Usage() string {
	return `disasm:
Decode a compiled bytecode file's header and records, printing one
mnemonic plus decoded operands per line. Complements dump, which shows
the source-side token stream instead of the compiled wire format.
`
}

func (*disasmCmd) SetFlags(f *flag.FlagSet) {}

func (*disasmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	for _, file := range f.Args() {
		if status := disasmFile(file); status != subcommands.ExitSuccess {
			return status
		}
	}
	return subcommands.ExitSuccess
}

func disasmFile(file string) subcommands.ExitStatus {
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("error reading %s: %s\n", file, err.Error())
		return subcommands.ExitFailure
	}

	if len(data) < bytecode.HeaderSize {
		fmt.Println("Unable to disassemble bytecode file.")
		return subcommands.ExitFailure
	}

	sum, err := bytecode.DecodeHeader(data[:bytecode.HeaderSize])
	if err != nil {
		fmt.Println("Unable to disassemble bytecode file.")
		return subcommands.ExitFailure
	}
	fmt.Printf("; checksum %d\n", sum)

	body := data[bytecode.HeaderSize:]
	for off := 0; off+bytecode.RecordSize <= len(body); off += bytecode.RecordSize {
		rec, err := bytecode.DecodeRecord(body, off)
		if err != nil {
			fmt.Println(err.Error())
			return subcommands.ExitFailure
		}

		fmt.Printf("%04d: %-6s %s %s\n", off, rec.Opcode, operandString(rec.Mode1, rec.Payload1), operandString(rec.Mode2, rec.Payload2))
	}

	return subcommands.ExitSuccess
}

func operandString(mode bytecode.OperandMode, payload int32) string {
	switch mode {
	case bytecode.ModeNop:
		return ""
	case bytecode.ModeRegister:
		return register.Index(payload).String()
	case bytecode.ModeRegisterPointer:
		return "@" + register.Index(payload).String()
	case bytecode.ModeInPlaceValue:
		return fmt.Sprintf("%d", payload)
	case bytecode.ModeLabel:
		return fmt.Sprintf("label:%d", payload)
	default:
		return "?"
	}
}
