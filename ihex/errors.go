package ihex

import (
	"errors"
	"fmt"
)

// ChecksumError indicates that a record's checksum byte disagrees with the
// value calculated over the record contents. Line holds the offending line
// verbatim for diagnostics.
type ChecksumError struct {
	Line       string
	Expected   byte
	Calculated byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: record has 0x%02X, calculated 0x%02X (%q)",
		e.Expected, e.Calculated, e.Line)
}

// SyntaxError indicates a malformed record: non-hexadecimal characters in
// the payload region of a start-marked line, or a byte count that does not
// match the actual record length.
type SyntaxError struct {
	Line   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed record: %s (%q)", e.Reason, e.Line)
}

// NoDataError indicates that the input parsed cleanly but contained no data
// records, so there is no binary image to produce.
type NoDataError struct{}

func (e *NoDataError) Error() string {
	return "no data records in input"
}

// ParamError indicates an invalid generation parameter.
type ParamError struct {
	Name   string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}

// IsChecksumError returns true if the error is, or wraps, a ChecksumError.
func IsChecksumError(err error) bool {
	var ce *ChecksumError
	return errors.As(err, &ce)
}

// IsSyntaxError returns true if the error is, or wraps, a SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// IsNoDataError returns true if the error is, or wraps, a NoDataError.
func IsNoDataError(err error) bool {
	var ne *NoDataError
	return errors.As(err, &ne)
}

// IsParamError returns true if the error is, or wraps, a ParamError.
func IsParamError(err error) bool {
	var pe *ParamError
	return errors.As(err, &pe)
}
