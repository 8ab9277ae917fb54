package flasher

import (
	"errors"
	"fmt"
)

// NackError indicates that the device rejected a command with a non-success
// status code.
type NackError struct {
	// Operation is the command that failed
	Operation string

	// Status is the status code from the device
	Status byte
}

func (e *NackError) Error() string {
	return fmt.Sprintf("%s rejected by device: %s (0x%02X)", e.Operation, statusName(e.Status), e.Status)
}

// IsNackError returns true if the error is, or wraps, a NackError.
func IsNackError(err error) bool {
	var ne *NackError
	return errors.As(err, &ne)
}

// VerifyError indicates that a read-back byte disagrees with the image.
type VerifyError struct {
	// Address is the first absolute address whose read-back differed
	Address uint32
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verification failed: device data differs at 0x%08X", e.Address)
}

// statusName returns a human-readable name for a device status code.
func statusName(code byte) string {
	switch code {
	case StatusSuccess:
		return "success"
	case StatusErrChecksum:
		return "frame checksum mismatch"
	case StatusErrRange:
		return "address out of range"
	case StatusErrWrite:
		return "flash write failed"
	case StatusErrCommand:
		return "unrecognized command"
	default:
		return fmt.Sprintf("unknown status code 0x%02X", code)
	}
}
