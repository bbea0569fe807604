// Package bytecode implements the fixed-width binary encoding: the 8-byte
// file header and the 12-byte-per-operation record format, plus the decoder
// the VM's pre-pass and execution loop read records back with.
package bytecode

import (
	"encoding/binary"
	"fmt"

	"github.com/Cdayz/simple-lang/opcode"
	"github.com/Cdayz/simple-lang/parser"
)

// Magic is the 16-bit value stamped at the start of every bytecode file.
const Magic int16 = 0x1235

// RecordSize is the fixed length, in bytes, of every encoded operation.
const RecordSize = 12

// HeaderSize is the fixed length, in bytes, of the file header.
const HeaderSize = 8

// OperandMode is the wire-format tag for how a record's operand payload
// should be interpreted. Its numbering is deliberately different from
// parser.OperandMode: the two enumerations name the same five concepts but
// were assigned independently, and the encoder is the only place they meet.
type OperandMode int8

const (
	ModeNop             OperandMode = 0
	ModeLabel           OperandMode = 1
	ModeRegister        OperandMode = 2
	ModeRegisterPointer OperandMode = 3
	ModeInPlaceValue    OperandMode = 4
)

// toWireMode translates a parse-time operand mode to its wire-format tag.
func toWireMode(m parser.OperandMode) OperandMode {
	switch m {
	case parser.ModeNop:
		return ModeNop
	case parser.ModeLabel:
		return ModeLabel
	case parser.ModeRegister:
		return ModeRegister
	case parser.ModeRegisterPointer:
		return ModeRegisterPointer
	case parser.ModeInPlaceValue:
		return ModeInPlaceValue
	default:
		return ModeNop
	}
}

// BadOperationSizeError reports that an operand payload could not be
// represented in the fixed 12-byte record (outside the signed 32-bit range).
// EncodeOperations does not return it: parser.Operand payloads are already
// int32, and the parser rejects a decimal literal outside that range with
// parser.BadInPlaceValueError.
type BadOperationSizeError struct {
	Mnemonic string
	Payload  int64
}

func (e *BadOperationSizeError) Error() string {
	return fmt.Sprintf("bad operation size: %s payload %d does not fit in 32 bits", e.Mnemonic, e.Payload)
}

// Record is the decoded form of one 12-byte operation.
type Record struct {
	Opcode  opcode.Code
	Mode1   OperandMode
	Payload1 int32
	Mode2   OperandMode
	Payload2 int32
}

// EncodeHeader writes the 8-byte file header: a little-endian i16 magic
// number, two zero padding bytes (the native-alignment gap Python's bare
// struct.pack('hI', ...) leaves between a 16-bit and a following 32-bit
// field), and a little-endian u32 checksum.
func EncodeHeader(checksum uint32) []byte {
	header := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(header[0:2], uint16(Magic))
	// header[2:4] left zero: alignment padding, not part of any field.
	binary.LittleEndian.PutUint32(header[4:8], checksum)
	return header
}

// DecodeHeader reads the 8-byte file header, returning the stored checksum.
// It reports an error if the magic number does not match.
func DecodeHeader(header []byte) (checksum uint32, err error) {
	if len(header) < HeaderSize {
		return 0, fmt.Errorf("bytecode: header too short: %d bytes", len(header))
	}
	magic := int16(binary.LittleEndian.Uint16(header[0:2]))
	if magic != Magic {
		return 0, fmt.Errorf("bytecode: bad magic number 0x%04x", uint16(magic))
	}
	return binary.LittleEndian.Uint32(header[4:8]), nil
}

// EncodeOperations encodes a parsed operation list into its 12-byte-record
// wire form, one record per operation, with no header.
func EncodeOperations(ops []parser.Operation) ([]byte, error) {
	buf := make([]byte, 0, len(ops)*RecordSize)

	for _, op := range ops {
		code, ok := opcode.Lookup(op.Mnemonic)
		if !ok {
			return nil, fmt.Errorf("bytecode: unknown mnemonic %q", op.Mnemonic)
		}

		record, err := encodeRecord(code, op.Args)
		if err != nil {
			return nil, err
		}
		buf = append(buf, record...)
	}

	return buf, nil
}

func encodeRecord(code opcode.Code, args [2]parser.Operand) ([]byte, error) {
	record := make([]byte, RecordSize)

	binary.LittleEndian.PutUint16(record[0:2], uint16(code))
	record[2] = byte(toWireMode(args[0].Mode))
	binary.LittleEndian.PutUint32(record[3:7], uint32(args[0].Payload))
	record[7] = byte(toWireMode(args[1].Mode))
	binary.LittleEndian.PutUint32(record[8:12], uint32(args[1].Payload))

	return record, nil
}

// DecodeRecord reads one 12-byte record starting at offset off within code.
func DecodeRecord(code []byte, off int) (Record, error) {
	if off < 0 || off+RecordSize > len(code) {
		return Record{}, fmt.Errorf("bytecode: record at offset %d out of range (code is %d bytes)", off, len(code))
	}

	rec := code[off : off+RecordSize]
	return Record{
		Opcode:   opcode.Code(int16(binary.LittleEndian.Uint16(rec[0:2]))),
		Mode1:    OperandMode(int8(rec[2])),
		Payload1: int32(binary.LittleEndian.Uint32(rec[3:7])),
		Mode2:    OperandMode(int8(rec[7])),
		Payload2: int32(binary.LittleEndian.Uint32(rec[8:12])),
	}, nil
}
