package enc

const (
	// RawGroupSize is the number of source bytes packed into one group
	RawGroupSize = 7
	// EncodedGroupSize is the number of 7-bit clean bytes a packed group occupies
	EncodedGroupSize = 8
)

// Pack spreads seven arbitrary bytes over eight 7-bit clean bytes. Bytes 1-7 carry the low seven bits of the
// corresponding source byte, byte 0 collects the high bits: the high bit of source byte i lands in bit 6-i.
func Pack(src *[RawGroupSize]byte) (dst [EncodedGroupSize]byte) {
	for i, v := range src {
		dst[i+1] = v & 0x7f
		dst[0] |= (v & 0x80) >> uint(i+1)
	}
	return
}

// Unpack is the reverse of Pack. Bits shifted out of byte 0 are discarded on purpose.
func Unpack(src *[EncodedGroupSize]byte) (dst [RawGroupSize]byte) {
	for i := range dst {
		dst[i] = src[i+1] | ((src[0] << uint(i+1)) & 0x80)
	}
	return
}
