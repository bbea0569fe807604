package vm

import (
	"github.com/Cdayz/simple-lang/bytecode"
)

// callHandler pushes the return address (the offset just past this CALL
// record) and jumps to the target label. It reports jumped=false like an
// ordinary jump: the dispatch loop's +12 advance lands just past the LABEL.
func callHandler(s *State, rec bytecode.Record) (bool, error) {
	offset, ok := s.labelOffset(rec.Payload1)
	if !ok {
		return false, &BadLabelError{LabelIndex: rec.Payload1}
	}
	s.pushReturn(s.ip + bytecode.RecordSize)
	s.ip = offset
	return false, nil
}

// retHandler pops the call stack and resumes at the saved return address.
// Unlike a jump, the saved address already points at the record following
// the original CALL, so retHandler reports jumped=true to suppress the
// dispatch loop's usual advance.
func retHandler(s *State, rec bytecode.Record) (bool, error) {
	addr, ok := s.popReturn()
	if !ok {
		return false, &CallStackUnderflowError{}
	}
	s.ip = addr
	return true, nil
}

// endHandler halts the executor in place. Like retHandler it reports
// jumped=true since ip has no further meaning once halted.
func endHandler(s *State, rec bytecode.Record) (bool, error) {
	s.halted = true
	return true, nil
}
