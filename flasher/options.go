package flasher

import "time"

// Config holds the flasher configuration.
type Config struct {
	// ProgressCallback is called after each chunk to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ChunkSize is the number of image bytes written per frame
	ChunkSize int

	// Retries is the number of retry attempts for failed commands
	Retries int

	// Verify enables read-back verification after all chunks are written
	Verify bool

	// CommandDelay is an optional pause between sending a frame and
	// reading its response, for devices that need settle time
	CommandDelay time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ChunkSize: DefaultChunkSize,
		Retries:   3,
		Verify:    true,
	}
}

// Option is a functional option for configuring the Flasher.
type Option func(*Config)

// WithProgressCallback sets a callback function to track flashing progress.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the flasher operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithChunkSize sets the number of image bytes written per frame.
// Values outside 1 to MaxChunkSize keep the default.
//
// Example:
//
//	fl := flasher.New(port, flasher.WithChunkSize(512))
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= MaxChunkSize {
			c.ChunkSize = size
		}
	}
}

// WithRetries sets the number of retry attempts for failed commands.
func WithRetries(retries int) Option {
	return func(c *Config) {
		if retries >= 0 {
			c.Retries = retries
		}
	}
}

// WithVerify enables or disables read-back verification after writing.
// Default is true.
func WithVerify(verify bool) Option {
	return func(c *Config) {
		c.Verify = verify
	}
}

// WithCommandDelay sets a pause between sending a frame and reading the
// response.
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}
