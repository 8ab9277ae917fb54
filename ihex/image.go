package ihex

// PadByte is the fill value for addresses inside an image's range that no
// data record wrote (erased-flash convention).
const PadByte byte = 0xFF

// Image is a contiguous binary image reconciled from parsed records.
type Image struct {
	// MinAddress is the lowest absolute address written by a data record
	MinAddress uint32

	// MaxAddress is the highest absolute address written by a data record
	MaxAddress uint32

	// Data holds the image bytes; Data[0] is the byte at MinAddress and
	// gaps between records hold PadByte
	Data []byte
}

// Size returns the number of bytes spanned by the image, including padded
// gaps.
func (img *Image) Size() uint32 {
	return img.MaxAddress - img.MinAddress + 1
}
