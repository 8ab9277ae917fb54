package flasher

import "time"

// Flashing phases reported through Progress.Phase.
const (
	PhaseWriting   = "writing"
	PhaseVerifying = "verifying"
	PhaseComplete  = "complete"
)

// Progress contains information about a flashing operation in flight.
// Passed to ProgressCallback after each chunk.
type Progress struct {
	// Phase is the current operation phase (PhaseWriting, PhaseVerifying,
	// PhaseComplete)
	Phase string

	// CurrentChunk is the number of chunks handled so far in this phase
	CurrentChunk int

	// TotalChunks is the total number of chunks in the image
	TotalChunks int

	// Percentage is the overall completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesWritten is the total number of bytes written so far
	BytesWritten int

	// ElapsedTime is the time elapsed since flashing started
	ElapsedTime time.Duration
}

// ProgressCallback is called after each chunk to report progress.
// Implementations should return quickly to avoid stalling the device.
//
// Example:
//
//	fl := flasher.New(port,
//	    flasher.WithProgressCallback(func(p flasher.Progress) {
//	        fmt.Printf("[%s] %.1f%%\n", p.Phase, p.Percentage)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// flasher, allowing integration with any logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
