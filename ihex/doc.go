// Package ihex converts between the Intel HEX text format and raw binary
// memory images.
//
// # Intel HEX Record Format
//
// An Intel HEX file is a sequence of text lines ("records"). Each record is
// a ':' followed by hex-encoded bytes:
//
//	:BBAAAATTDD..DDCC
//	  BB     = byte count (number of data bytes)
//	  AAAA   = 16-bit load address (big-endian)
//	  TT     = record type
//	  DD..DD = data bytes
//	  CC     = checksum (2's complement of the sum of all preceding bytes)
//
// Example record:
//
//	:0300300002337A1E
//	  03   = 3 data bytes
//	  0030 = load address 0x0030
//	  00   = data record
//	  02337A = data
//	  1E   = checksum
//
// Record types handled:
//
//	0x00 Data
//	0x01 End Of File (hard stop: any lines after it are never parsed)
//	0x04 Extended Linear Address (upper 16 bits for subsequent data records)
//
// Types 0x02, 0x03 and 0x05 (segment addressing and start addresses) are
// skipped on input and never emitted on output.
//
// # Usage
//
// Convert a HEX file to a binary image:
//
//	img, err := ihex.Parse(hexText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("0x%08X-0x%08X (%d bytes)\n", img.MinAddress, img.MaxAddress, img.Size())
//	os.WriteFile("out.bin", img.Data, 0644)
//
// Addresses between the lowest and highest data byte that no record wrote
// are filled with PadByte (0xFF, the erased-flash convention).
//
// Convert a binary buffer to HEX text:
//
//	text, err := ihex.Generate(data, 0x08000000, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// An Extended Linear Address record is emitted whenever the 64 KiB segment
// of the current line differs from the previous one, including before the
// first data record.
//
// # Error Handling
//
// All parse failures abort the whole conversion; there is no partial
// output. Errors carry the offending line and are classified by type:
//
//   - ChecksumError: a record checksum disagrees with the calculated value
//   - SyntaxError: non-hex characters or a byte count/length mismatch
//   - NoDataError: the input contained no data records at all
//   - ParamError: invalid generation parameters
//
// Use IsChecksumError, IsSyntaxError, IsNoDataError and IsParamError to
// classify wrapped errors.
package ihex
