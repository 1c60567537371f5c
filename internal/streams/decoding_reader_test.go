package streams

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_DecodingReader_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 6, 7, 8, 12, 13, 14, 15, 1000, 70001} {
		for _, chunk := range []int{1, 5, 8, 4096} {
			data := randomData(int64(n)+100, n)
			r := NewDecodingReader(&chunkedReader{r: strings.NewReader(enc.Encode(data)), chunk: chunk}, -1)

			decoded, err := io.ReadAll(r)
			require.NoErrorf(t, err, "Could not decode %d bytes in chunks of %d", n, chunk)
			require.Equal(t, len(data), len(decoded))
			require.True(t, bytes.Equal(data, decoded))
			require.Equal(t, int64(enc.EncodedLen(n)), r.Consumed())
		}
	}
}

func Test_DecodingReader_Vectors(t *testing.T) {
	r := NewDecodingReader(bytes.NewReader([]byte{0, 0, 72, 101, 108, 108, 111, 44, 0, 32, 119, 111, 114, 108, 100, 33}), 16)
	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "Hello, world!", string(decoded))

	r = NewDecodingReader(bytes.NewReader(nil), 0)
	decoded, err = io.ReadAll(r)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func Test_DecodingReader_InvalidLength(t *testing.T) {
	encoded := enc.Encode([]byte("Hello, world!"))
	r := NewDecodingReader(strings.NewReader(encoded[:len(encoded)-3]), -1)
	_, err := io.ReadAll(r)
	require.True(t, errors.Is(err, enc.ErrInvalidLength))

	var decodeErr *enc.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Equal(t, len(encoded)-3, decodeErr.Length)

	// Errors are sticky
	_, err = r.Read(make([]byte, 10))
	require.True(t, errors.Is(err, enc.ErrInvalidLength))
}

func Test_DecodingReader_InvalidPadding(t *testing.T) {
	group := [enc.RawGroupSize]byte{9}
	packed := enc.Pack(&group)
	r := NewDecodingReader(bytes.NewReader(packed[:]), -1)
	_, err := io.ReadAll(r)
	require.True(t, errors.Is(err, enc.ErrInvalidPadding))
}

func Test_DecodingReader_KnownSizeMatchesDecode(t *testing.T) {
	group := [enc.RawGroupSize]byte{0x7f}
	packed := enc.Pack(&group)
	badPadding := string(packed[:]) + enc.Encode([]byte("trailing"))
	truncated := enc.Encode(make([]byte, 100))[:117]

	for _, data := range []string{badPadding, string(packed[:]) + "x", truncated} {
		_, expected := enc.Decode(data)
		require.Error(t, expected)

		out := &bytes.Buffer{}
		_, err := io.Copy(out, NewDecodingReader(strings.NewReader(data), int64(len(data))))
		require.Equal(t, expected, err)
		require.Zero(t, out.Len(), "Output written before the error")
	}
}
