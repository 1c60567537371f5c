package enc

import (
	"fmt"

	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

// Base128Encoder encodes 7 bytes to 8 characters as one continuous bit stream, without a padding header.
// Decoding is delegated to LUCI's base128 package.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	dst := make([]byte, 0, (len(src)*8+6)/7)

	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// Take the current buffer, add current value, shifted.
		// E.g. first round is first 7 bits of value
		dst = append(dst, bufByte|(val>>whichByte))

		// Keep the remaining low bits, aligned to the top of the next 7-bit character
		bufByte = (val & ((1 << whichByte) - 1)) << (7 - whichByte)

		if whichByte == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichByte = 0
		}

		whichByte++
	}

	if whichByte > 1 {
		dst = append(dst, bufByte)
	}
	return string(dst)
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	res, err := base128.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) BlocksizeRaw() int {
	return 7
}

func (b *Base128Encoder) BlocksizeEncoded() int {
	return 8
}

func (b *Base128Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ"),
		[]byte("La-fl\373te-na\357ve-fran\347aise-est-retir\351-\340-Cr\350te"),
	}
}
