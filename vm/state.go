// Package vm implements the register-and-memory virtual machine: the mutable
// execution state, the per-mnemonic instruction handlers, and the two-pass
// executor that drives them.
package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/Cdayz/simple-lang/register"
)

// MemSize is the size of the VM's fixed linear memory region.
const MemSize = 1024

// State is the virtual machine's mutable execution record. Handlers mutate a
// State in place — the deep-copy-per-instruction behavior of the source this
// language was distilled from is a host-language artifact this
// implementation does not reproduce.
type State struct {
	Registers [register.Count]int64
	Memory    [MemSize]int64

	code []byte
	ip   int

	// labels maps a label index to the byte offset of the LABEL instruction
	// that defines it. Index 0 is reserved and always zero; real labels
	// start at index 1 (see parser.Parser.labelIndex).
	labels []int

	// callStack holds return addresses pushed by CALL and popped by RET.
	callStack []int

	halted bool

	Stdin  *bufio.Reader
	Stdout *bufio.Writer
}

// New creates a State ready to execute the given code region, reading INPUT
// from stdin and writing PRINT output to stdout.
func New(code []byte) *State {
	return NewWithIO(code, os.Stdin, os.Stdout)
}

// NewWithIO creates a State with explicit I/O streams, so tests can drive
// INPUT and capture PRINT output without touching the real console.
func NewWithIO(code []byte, in io.Reader, out io.Writer) *State {
	return &State{
		code:   code,
		Stdin:  bufio.NewReader(in),
		Stdout: bufio.NewWriter(out),
	}
}

// IP returns the current instruction pointer, a byte offset into the code
// region.
func (s *State) IP() int {
	return s.ip
}

// CodeSize returns the length of the code region in bytes.
func (s *State) CodeSize() int {
	return len(s.code)
}

// Halted reports whether an END instruction has stopped the executor.
func (s *State) Halted() bool {
	return s.halted
}

func (s *State) labelOffset(index int32) (int, bool) {
	if index <= 0 || int(index) >= len(s.labels) {
		return 0, false
	}
	return s.labels[index], true
}

func (s *State) setLabelOffset(index int32, offset int) {
	for int(index) >= len(s.labels) {
		s.labels = append(s.labels, 0)
	}
	s.labels[index] = offset
}

func (s *State) pushReturn(addr int) {
	s.callStack = append(s.callStack, addr)
}

func (s *State) popReturn() (int, bool) {
	if len(s.callStack) == 0 {
		return 0, false
	}
	top := s.callStack[len(s.callStack)-1]
	s.callStack = s.callStack[:len(s.callStack)-1]
	return top, true
}
