package vm

import (
	"fmt"

	"github.com/Cdayz/simple-lang/bytecode"
	"github.com/Cdayz/simple-lang/register"
)

// cmpHandler reads both operands (the left operand may be in-place here,
// unlike every other binary handler) and sets the flag registers. Only the
// equal branch clears the other flags — GT/LT/NE are sticky once set and
// stay set until a later CMP clears or re-sets them.
func cmpHandler(s *State, rec bytecode.Record) (bool, error) {
	left, err := s.readValue(rec.Mode1, rec.Payload1)
	if err != nil {
		return false, fmt.Errorf("CMP: %w", err)
	}
	right, err := s.readValue(rec.Mode2, rec.Payload2)
	if err != nil {
		return false, fmt.Errorf("CMP: %w", err)
	}

	switch {
	case left > right:
		s.Registers[register.GT] = 1
		s.Registers[register.NE] = 1
	case left < right:
		s.Registers[register.LT] = 1
		s.Registers[register.NE] = 1
	case left == right:
		s.Registers[register.EQ] = 1
		s.Registers[register.LT] = 0
		s.Registers[register.GT] = 0
		s.Registers[register.NE] = 0
	}

	return false, nil
}
