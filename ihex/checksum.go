package ihex

// Checksum computes the Intel HEX record checksum: the 2's complement of
// the 8-bit sum of every record byte (byte count, address, type and data).
//
// A record is valid when Checksum over all bytes before the checksum byte
// equals the checksum byte itself.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}
