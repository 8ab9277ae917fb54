package ihex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Parse converts Intel HEX text into a contiguous binary image.
//
// Example:
//
//	img, err := ihex.Parse(hexText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("firmware.bin", img.Data, 0644)
func Parse(text string) (*Image, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader converts Intel HEX text from any io.Reader into a contiguous
// binary image.
//
// Records are applied sequentially: data records write bytes into a sparse
// map at (extended linear address << 16) | record address, with later
// records overwriting earlier ones at the same address. An End Of File
// record stops parsing immediately, even with lines remaining. Lines that
// are not records (blank lines, comments) are skipped. The sparse map is
// then reconciled into an Image spanning the lowest to highest written
// address, with unwritten gaps set to PadByte.
//
// Any malformed record aborts the whole conversion; an input with no data
// records at all fails with NoDataError.
func ParseReader(r io.Reader) (*Image, error) {
	var (
		scanner = bufio.NewScanner(r)
		sparse  = make(map[uint32]byte)
		ela     uint32
		minAddr uint32
		maxAddr uint32
		first   = true
		lineNum int
	)

scan:
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		rec, err := DecodeRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if rec == nil {
			continue
		}

		switch rec.Type {
		case RecordData:
			if len(rec.Data) == 0 {
				continue
			}
			base := ela<<16 | uint32(rec.Address)
			for i, b := range rec.Data {
				sparse[base+uint32(i)] = b
			}
			end := base + uint32(len(rec.Data)) - 1
			if first || base < minAddr {
				minAddr = base
			}
			if first || end > maxAddr {
				maxAddr = end
			}
			first = false

		case RecordEOF:
			break scan

		case RecordExtLinearAddr:
			if rec.ByteCount != 2 {
				return nil, fmt.Errorf("line %d: %w", lineNum, &SyntaxError{
					Line:   line,
					Reason: fmt.Sprintf("extended linear address record must carry 2 bytes, got %d", rec.ByteCount),
				})
			}
			ela = uint32(binary.BigEndian.Uint16(rec.Data))

		default:
			// Segment addressing and start address records (0x02, 0x03,
			// 0x05) and unknown types carry no image data.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: reading input: %w", lineNum, err)
	}

	if len(sparse) == 0 {
		return nil, &NoDataError{}
	}

	img := &Image{
		MinAddress: minAddr,
		MaxAddress: maxAddr,
		Data:       make([]byte, maxAddr-minAddr+1),
	}
	for i := range img.Data {
		img.Data[i] = PadByte
	}
	for addr, b := range sparse {
		img.Data[addr-minAddr] = b
	}

	return img, nil
}
