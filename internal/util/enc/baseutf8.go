package enc

import (
	"fmt"
	"strings"
)

// Padding returns the number of zero filler bytes appended to an input of n bytes, so that the input plus
// the leading padding byte fill whole groups. The result is always in the range 0-6.
func Padding(n int) int {
	return (RawGroupSize - (n+1)%RawGroupSize) % RawGroupSize
}

// EncodedLen returns the length of the encoded representation of n bytes. It is always a positive
// multiple of EncodedGroupSize, even for n == 0.
func EncodedLen(n int) int {
	return (n + 1 + Padding(n)) / RawGroupSize * EncodedGroupSize
}

// Encode packs src into a string where every byte is 7-bit clean. The first byte of the first group records
// the padding so Decode can strip the zero fillers again. Encode never fails.
func Encode(src []byte) string {
	var sb strings.Builder
	sb.Grow(EncodedLen(len(src)))

	var group [RawGroupSize]byte
	group[0] = byte(Padding(len(src)))
	fill := 1

	for _, v := range src {
		group[fill] = v
		fill++
		if fill == RawGroupSize {
			packed := Pack(&group)
			sb.Write(packed[:])
			fill = 0
		}
	}

	// Whatever is left is exactly Padding(len(src)) bytes short of a full group
	if fill > 0 {
		for ; fill < RawGroupSize; fill++ {
			group[fill] = 0
		}
		packed := Pack(&group)
		sb.Write(packed[:])
	}

	return sb.String()
}

// Decode is the reverse of Encode. An empty string decodes into an empty slice. Length is validated before
// the padding field; no partial result is returned on error.
func Decode(data string) ([]byte, error) {
	n := len(data)
	if n == 0 {
		return []byte{}, nil
	}
	if n%EncodedGroupSize != 0 {
		return nil, &DecodeError{Kind: InvalidLength, Length: n}
	}

	groups := n / EncodedGroupSize
	first := Unpack(groupAt(data, 0))
	padding := int(first[0])
	if padding >= RawGroupSize {
		return nil, &DecodeError{Kind: InvalidPadding, Length: n}
	}

	// Never negative: a single group holds at least 7 logical bytes and padding is at most 6.
	dst := make([]byte, groups*RawGroupSize-1-padding)

	// Very short inputs end inside the first group, anything past the output length is filler
	off := copy(dst, first[1:])
	if groups == 1 {
		return dst, nil
	}

	for g := 1; g < groups-1; g++ {
		block := Unpack(groupAt(data, g))
		off += copy(dst[off:], block[:])
	}

	last := Unpack(groupAt(data, groups-1))
	copy(dst[off:], last[:RawGroupSize-padding])

	return dst, nil
}

func groupAt(data string, g int) *[EncodedGroupSize]byte {
	var group [EncodedGroupSize]byte
	copy(group[:], data[g*EncodedGroupSize:])
	return &group
}

// -------------------------------------------------------

// BaseUTF8Encoder encodes 7 bytes to 8 characters, each of them in the 0x00-0x7f range, which makes the
// output valid UTF-8 and ASCII.
type BaseUTF8Encoder struct {
}

func (b *BaseUTF8Encoder) Name() string {
	return "BaseUTF8"
}

func (b *BaseUTF8Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *BaseUTF8Encoder) Code() byte {
	return 'U'
}

func (b *BaseUTF8Encoder) Encode(data []byte) string {
	return Encode(data)
}

func (b *BaseUTF8Encoder) Decode(data string) ([]byte, error) {
	return Decode(data)
}

func (b *BaseUTF8Encoder) BlocksizeRaw() int {
	return RawGroupSize
}

func (b *BaseUTF8Encoder) BlocksizeEncoded() int {
	return EncodedGroupSize
}

func (b *BaseUTF8Encoder) TestPatterns() [][]byte {
	return [][]byte{
		{},
		{0},
		[]byte("Hello, world!"),
		{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa},
		{0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87},
	}
}
