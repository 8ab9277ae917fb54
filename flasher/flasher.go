package flasher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/HKrzyszczak/go-ihex/ihex"
)

// Flasher writes binary images to a device chunk by chunk, with optional
// read-back verification and progress tracking.
type Flasher struct {
	device io.ReadWriter
	config Config
}

// New creates a Flasher for the given device and options. The device must
// implement io.ReadWriter, typically a serial port.
//
// Example:
//
//	port, err := serial.Open("/dev/ttyUSB0", &serial.Mode{BaudRate: 115200})
//	fl := flasher.New(port, flasher.WithRetries(5))
func New(device io.ReadWriter, opts ...Option) *Flasher {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Flasher{
		device: device,
		config: cfg,
	}
}

// Flash writes the image to the device:
//  1. Write every chunk at its absolute address, retrying failed frames
//  2. Optionally read every chunk back and compare it to the image
//
// The operation can be cancelled via context between chunks.
//
// Example:
//
//	img, _ := ihex.Parse(hexText)
//	err := fl.Flash(context.Background(), img)
func (f *Flasher) Flash(ctx context.Context, img *ihex.Image) error {
	if img == nil || len(img.Data) == 0 {
		return fmt.Errorf("image cannot be empty")
	}

	var (
		startTime  = time.Now()
		chunkSize  = f.config.ChunkSize
		total      = (len(img.Data) + chunkSize - 1) / chunkSize
		written    = 0
		writeShare = 100.0
	)
	if f.config.Verify {
		writeShare = 90.0
	}

	f.logDebug("flash start",
		"min_address", fmt.Sprintf("0x%08X", img.MinAddress),
		"size", len(img.Data),
		"chunks", total,
	)

	chunk := 0
	for off := 0; off < len(img.Data); off += chunkSize {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		end := off + chunkSize
		if end > len(img.Data) {
			end = len(img.Data)
		}
		addr := img.MinAddress + uint32(off)

		if err := f.writeChunk(addr, img.Data[off:end]); err != nil {
			return fmt.Errorf("write chunk at 0x%08X: %w", addr, err)
		}

		chunk++
		written += end - off
		f.reportProgress(Progress{
			Phase:        PhaseWriting,
			CurrentChunk: chunk,
			TotalChunks:  total,
			Percentage:   float64(chunk) / float64(total) * writeShare,
			BytesWritten: written,
			ElapsedTime:  time.Since(startTime),
		})
	}

	if f.config.Verify {
		chunk = 0
		for off := 0; off < len(img.Data); off += chunkSize {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("cancelled: %w", err)
			}

			end := off + chunkSize
			if end > len(img.Data) {
				end = len(img.Data)
			}
			addr := img.MinAddress + uint32(off)

			if err := f.verifyChunk(addr, img.Data[off:end]); err != nil {
				return err
			}

			chunk++
			f.reportProgress(Progress{
				Phase:        PhaseVerifying,
				CurrentChunk: chunk,
				TotalChunks:  total,
				Percentage:   90 + float64(chunk)/float64(total)*10,
				BytesWritten: written,
				ElapsedTime:  time.Since(startTime),
			})
		}
	}

	f.reportProgress(Progress{
		Phase:        PhaseComplete,
		CurrentChunk: total,
		TotalChunks:  total,
		Percentage:   100,
		BytesWritten: written,
		ElapsedTime:  time.Since(startTime),
	})

	f.logInfo("flash complete",
		"chunks", total,
		"bytes", written,
		"elapsed", time.Since(startTime).String(),
	)

	return nil
}

// writeChunk sends one write frame, retrying on transport errors and device
// rejections.
func (f *Flasher) writeChunk(addr uint32, chunk []byte) error {
	frame := buildWriteFrame(addr, chunk)

	var lastErr error
	for attempt := 0; attempt <= f.config.Retries; attempt++ {
		status, _, err := f.transact(frame)
		if err != nil {
			lastErr = err
			f.logDebug("write failed, retrying", "attempt", attempt+1, "error", err.Error())
			continue
		}
		if status != StatusSuccess {
			lastErr = &NackError{Operation: "write chunk", Status: status}
			f.logDebug("write rejected, retrying", "attempt", attempt+1, "status", fmt.Sprintf("0x%02X", status))
			continue
		}
		return nil
	}
	return lastErr
}

// verifyChunk reads one chunk back and compares it to the image.
func (f *Flasher) verifyChunk(addr uint32, want []byte) error {
	got, err := f.readChunk(addr, len(want))
	if err != nil {
		return fmt.Errorf("read back chunk at 0x%08X: %w", addr, err)
	}

	if !bytes.Equal(got, want) {
		for i := range want {
			if got[i] != want[i] {
				return &VerifyError{Address: addr + uint32(i)}
			}
		}
	}
	return nil
}

// readChunk requests count bytes from the device at addr.
func (f *Flasher) readChunk(addr uint32, count int) ([]byte, error) {
	frame := buildReadFrame(addr, uint16(count))

	var lastErr error
	for attempt := 0; attempt <= f.config.Retries; attempt++ {
		status, data, err := f.transact(frame)
		if err != nil {
			lastErr = err
			continue
		}
		if status != StatusSuccess {
			lastErr = &NackError{Operation: "read chunk", Status: status}
			continue
		}
		if len(data) != count {
			return nil, fmt.Errorf("device returned %d bytes, expected %d", len(data), count)
		}
		return data, nil
	}
	return nil, lastErr
}

// transact sends one frame and reads its response.
func (f *Flasher) transact(frame []byte) (status byte, data []byte, err error) {
	if _, err := f.device.Write(frame); err != nil {
		return 0, nil, fmt.Errorf("write frame: %w", err)
	}

	if f.config.CommandDelay > 0 {
		time.Sleep(f.config.CommandDelay)
	}

	response := make([]byte, MinFrameSize+MaxChunkSize)
	n, err := f.device.Read(response)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	return parseResponse(response[:n])
}

// reportProgress calls the progress callback if configured.
func (f *Flasher) reportProgress(progress Progress) {
	if f.config.ProgressCallback != nil {
		f.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (f *Flasher) logDebug(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (f *Flasher) logInfo(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Info(msg, keysAndValues...)
	}
}
