package ihex

import (
	"fmt"
	"io"
	"strings"
)

// Generate converts a binary buffer into Intel HEX text.
//
// Example:
//
//	text, err := ihex.Generate(data, 0x08000000, 16)
func Generate(data []byte, baseAddr uint32, bytesPerLine int) (string, error) {
	var sb strings.Builder
	if err := GenerateTo(&sb, data, baseAddr, bytesPerLine); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// GenerateTo writes Intel HEX text for a binary buffer to w.
//
// The buffer is walked in chunks of bytesPerLine (the last chunk may be
// shorter). Each chunk becomes one data record at baseAddr plus its offset.
// An Extended Linear Address record is emitted whenever the 64 KiB segment
// of a chunk's absolute address differs from the previous chunk's,
// including before the first chunk. A single End Of File record terminates
// the output, so an empty buffer produces just that record.
//
// bytesPerLine must be between 1 and 255 (the record byte count is a
// single byte); anything else fails with ParamError.
func GenerateTo(w io.Writer, data []byte, baseAddr uint32, bytesPerLine int) error {
	if bytesPerLine < 1 || bytesPerLine > 255 {
		return &ParamError{
			Name:   "bytes per line",
			Reason: fmt.Sprintf("%d is not between 1 and 255", bytesPerLine),
		}
	}

	// Sentinel outside the 16-bit range so the first chunk always emits
	// an extended linear address record.
	segment := -1

	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}

		addr := baseAddr + uint32(i)
		if seg := int(addr >> 16); seg != segment {
			segment = seg
			ela := EncodeRecord(0, RecordExtLinearAddr, []byte{byte(seg >> 8), byte(seg)})
			if _, err := io.WriteString(w, ela); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, EncodeRecord(uint16(addr), RecordData, data[i:end])); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, EncodeRecord(0, RecordEOF, nil))
	return err
}
