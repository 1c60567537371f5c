package enc

import "fmt"

// -------------------------------------------------------

// RawEncoder encodes 8 bytes to 8 characters -- it simply does not do any translation whatsoever. The output is
// not guaranteed to be valid text; it serves as the zero-overhead baseline.
type RawEncoder struct {
}

func (b *RawEncoder) Name() string {
	return "Raw"
}

func (b *RawEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *RawEncoder) Code() byte {
	return 'R'
}

func (b *RawEncoder) Encode(data []byte) string {
	return string(data)
}

func (b *RawEncoder) Decode(data string) ([]byte, error) {
	return []byte(data), nil
}

func (b *RawEncoder) BlocksizeRaw() int {
	return 1
}

func (b *RawEncoder) BlocksizeEncoded() int {
	return 1
}

func (b *RawEncoder) TestPatterns() [][]byte {
	return [][]byte{}
}
