package ihex

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Intel HEX record types.
const (
	// RecordData carries data bytes at a 16-bit load address
	RecordData byte = 0x00

	// RecordEOF terminates the file; nothing after it is parsed
	RecordEOF byte = 0x01

	// RecordExtSegmentAddr supplies a segment base (ignored)
	RecordExtSegmentAddr byte = 0x02

	// RecordStartSegmentAddr supplies a CS:IP start address (ignored)
	RecordStartSegmentAddr byte = 0x03

	// RecordExtLinearAddr supplies the upper 16 bits of the 32-bit address
	RecordExtLinearAddr byte = 0x04

	// RecordStartLinearAddr supplies a 32-bit start address (ignored)
	RecordStartLinearAddr byte = 0x05
)

// StartCode is the character every record line begins with.
const StartCode = ':'

// MinLineLength is the shortest possible record line: the start code plus
// hex digits for byte count (2), address (4), type (2) and checksum (2).
const MinLineLength = 11

// Record is one decoded Intel HEX line.
type Record struct {
	// ByteCount is the number of data bytes (equals len(Data))
	ByteCount byte

	// Address is the 16-bit load address field
	Address uint16

	// Type is the record type (RecordData, RecordEOF, ...)
	Type byte

	// Data is the record payload
	Data []byte

	// Checksum is the trailing checksum byte, already verified
	Checksum byte
}

// DecodeRecord decodes one line of Intel HEX text.
//
// Lines that are empty, do not begin with ':' or are shorter than
// MinLineLength are not records; for those DecodeRecord returns (nil, nil)
// so callers can skip them. A start-marked line that fails to decode
// returns a SyntaxError or ChecksumError.
func DecodeRecord(line string) (*Record, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < MinLineLength || line[0] != StartCode {
		return nil, nil
	}

	raw, err := hex.DecodeString(line[1:])
	if err != nil {
		return nil, &SyntaxError{Line: line, Reason: err.Error()}
	}

	count := raw[0]
	if int(count)+5 != len(raw) {
		return nil, &SyntaxError{
			Line:   line,
			Reason: fmt.Sprintf("record holds %d bytes but byte count field says %d", len(raw)-5, count),
		}
	}

	calculated := Checksum(raw[:len(raw)-1])
	if got := raw[len(raw)-1]; calculated != got {
		return nil, &ChecksumError{Line: line, Expected: got, Calculated: calculated}
	}

	rec := &Record{
		ByteCount: count,
		Address:   binary.BigEndian.Uint16(raw[1:3]),
		Type:      raw[3],
		Data:      make([]byte, count),
		Checksum:  raw[len(raw)-1],
	}
	copy(rec.Data, raw[4:4+int(count)])

	return rec, nil
}

// EncodeRecord builds one Intel HEX line from an address, record type and
// payload: uppercase hex digits, ':' prefix, checksum and a trailing
// newline. The payload must be at most 255 bytes (the byte count is a
// single byte). The result round-trips exactly through DecodeRecord.
func EncodeRecord(addr uint16, typ byte, data []byte) string {
	raw := make([]byte, 0, len(data)+5)
	raw = append(raw, byte(len(data)), byte(addr>>8), byte(addr), typ)
	raw = append(raw, data...)
	raw = append(raw, Checksum(raw))

	return ":" + strings.ToUpper(hex.EncodeToString(raw)) + "\n"
}
