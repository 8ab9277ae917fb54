package flasher

import (
	"encoding/binary"
	"fmt"
)

// Framing constants.
const (
	// StartOfFrame marks the beginning of every request and response
	StartOfFrame byte = 0x01

	// EndOfFrame marks the end of every request and response
	EndOfFrame byte = 0x17

	// CmdWrite programs a chunk at a flash address
	CmdWrite byte = 0x40

	// CmdRead reads back a chunk from a flash address
	CmdRead byte = 0x52

	// MinFrameSize is SOF + CMD + LEN(2) + CHECKSUM(2) + EOF
	MinFrameSize = 7
)

// Device status codes.
const (
	StatusSuccess     byte = 0x00
	StatusErrChecksum byte = 0x08
	StatusErrRange    byte = 0x09
	StatusErrWrite    byte = 0x0A
	StatusErrCommand  byte = 0x0B
)

// Chunk size limits.
const (
	// DefaultChunkSize is the write granularity used unless configured
	DefaultChunkSize = 256

	// MaxChunkSize is the largest chunk the frame format carries
	MaxChunkSize = 1024
)

// frameChecksum computes the 16-bit 2's-complement checksum over CMD, LEN
// and DATA (everything between SOF and the checksum field).
func frameChecksum(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return 1 + (0xFFFF ^ sum)
}

// buildFrame assembles a complete request frame for a command and payload.
func buildFrame(cmd byte, data []byte) []byte {
	frame := make([]byte, 0, MinFrameSize+len(data))

	frame = append(frame, StartOfFrame, cmd)

	lenBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(lenBytes, uint16(len(data)))
	frame = append(frame, lenBytes...)

	frame = append(frame, data...)

	sumBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(sumBytes, frameChecksum(frame[1:]))
	frame = append(frame, sumBytes...)

	return append(frame, EndOfFrame)
}

// buildWriteFrame builds a CmdWrite request: 32-bit big-endian address
// followed by the chunk bytes.
func buildWriteFrame(addr uint32, chunk []byte) []byte {
	payload := make([]byte, 0, 4+len(chunk))
	payload = binary.BigEndian.AppendUint32(payload, addr)
	payload = append(payload, chunk...)
	return buildFrame(CmdWrite, payload)
}

// buildReadFrame builds a CmdRead request: 32-bit big-endian address
// followed by a 16-bit big-endian byte count.
func buildReadFrame(addr uint32, count uint16) []byte {
	payload := make([]byte, 6)
	binary.BigEndian.PutUint32(payload[0:4], addr)
	binary.BigEndian.PutUint16(payload[4:6], count)
	return buildFrame(CmdRead, payload)
}

// parseResponse validates a response frame and extracts its status code and
// payload.
func parseResponse(frame []byte) (status byte, data []byte, err error) {
	if len(frame) < MinFrameSize {
		return 0, nil, fmt.Errorf("response too short: got %d bytes, minimum is %d", len(frame), MinFrameSize)
	}
	if frame[0] != StartOfFrame {
		return 0, nil, fmt.Errorf("invalid start of frame: got 0x%02X, expected 0x%02X", frame[0], StartOfFrame)
	}

	dataLen := binary.LittleEndian.Uint16(frame[2:4])
	total := MinFrameSize + int(dataLen)
	if len(frame) < total {
		return 0, nil, fmt.Errorf("incomplete response: got %d bytes, frame declares %d", len(frame), total)
	}
	if frame[total-1] != EndOfFrame {
		return 0, nil, fmt.Errorf("invalid end of frame: got 0x%02X, expected 0x%02X", frame[total-1], EndOfFrame)
	}

	want := binary.LittleEndian.Uint16(frame[total-3 : total-1])
	if got := frameChecksum(frame[1 : total-3]); got != want {
		return 0, nil, fmt.Errorf("response checksum mismatch: got 0x%04X, calculated 0x%04X", want, got)
	}

	return frame[1], frame[4 : 4+dataLen], nil
}
