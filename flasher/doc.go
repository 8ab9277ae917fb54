// Package flasher writes a converted binary image to a device over a
// simple framed serial protocol.
//
// # Protocol Overview
//
// Communication is packet based, one request per response:
//
//	Request:  [SOF][CMD][LEN_L][LEN_H][DATA...][CHECKSUM_L][CHECKSUM_H][EOF]
//	Response: [SOF][STATUS][LEN_L][LEN_H][DATA...][CHECKSUM_L][CHECKSUM_H][EOF]
//
// Where:
//   - SOF = Start of Frame (0x01)
//   - EOF = End of Frame (0x17)
//   - LEN = 16-bit data length (little-endian)
//   - CHECKSUM = 16-bit 2's-complement sum (little-endian) over CMD/STATUS,
//     LEN and DATA
//
// A write request's data is a 32-bit big-endian flash address followed by
// the chunk bytes; a read request's data is the address followed by a
// 16-bit byte count.
//
// # Basic Usage
//
//	img, err := ihex.Parse(hexText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The device is any io.ReadWriter, typically a serial port.
//	fl := flasher.New(port)
//	if err := fl.Flash(context.Background(), img); err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
//	fl := flasher.New(port,
//	    flasher.WithProgressCallback(func(p flasher.Progress) {
//	        fmt.Printf("[%s] %.1f%% - chunk %d/%d\n",
//	            p.Phase, p.Percentage, p.CurrentChunk, p.TotalChunks)
//	    }),
//	)
//
// # Configuration Options
//
//	fl := flasher.New(port,
//	    flasher.WithChunkSize(512),
//	    flasher.WithRetries(5),
//	    flasher.WithVerify(false),
//	)
package flasher
