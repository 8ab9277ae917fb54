package ihex

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseAddressPresets maps well-known flash origins to base addresses, for
// front ends that offer a preset dropdown instead of a raw hex field.
var BaseAddressPresets = map[string]uint32{
	"zero":  0x00000000,
	"stm32": 0x08000000,
	"sam":   0x00400000,
	"pic32": 0x1D000000,
}

// LineLengths are the record sizes conversion front ends offer. The codec
// itself accepts any value between 1 and 255.
var LineLengths = []int{16, 32}

// ParseBaseAddress resolves a caller-supplied base address: either a preset
// name from BaseAddressPresets or a hexadecimal string, optionally
// 0x-prefixed.
//
// Example:
//
//	addr, err := ihex.ParseBaseAddress("0x08000000") // 0x08000000
//	addr, err = ihex.ParseBaseAddress("stm32")       // 0x08000000
func ParseBaseAddress(s string) (uint32, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if addr, ok := BaseAddressPresets[key]; ok {
		return addr, nil
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(key, "0x"), 16, 32)
	if err != nil {
		return 0, &ParamError{
			Name:   "base address",
			Reason: fmt.Sprintf("%q is not a hex address or known preset", s),
		}
	}
	return uint32(v), nil
}
