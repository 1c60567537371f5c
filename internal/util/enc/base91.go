package enc

import (
	"fmt"

	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

// Base91Encoder when encoding, each group of 13 bits is converted into 2 radix-91 digits.
type Base91Encoder struct {
}

func (b *Base91Encoder) Name() string {
	return "Base91"
}

func (b *Base91Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91Encoder) Code() byte {
	return 'X'
}

func (b *Base91Encoder) Encode(data []byte) string {
	return base91.StdEncoding.EncodeToString(data)
}

func (b *Base91Encoder) Decode(data string) ([]byte, error) {
	res, err := base91.StdEncoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

// BlocksizeRaw is nominal; base91 works on a 13-bit sliding window rather than on whole bytes.
func (b *Base91Encoder) BlocksizeRaw() int {
	return 13
}

func (b *Base91Encoder) BlocksizeEncoded() int {
	return 16
}

func (b *Base91Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,-/:;<=>?@[]^_`{|}~\""),
	}
}
