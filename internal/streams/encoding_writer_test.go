package streams

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func randomData(seed int64, n int) []byte {
	data := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(data)
	return data
}

// chunkedReader returns at most `chunk` bytes per Read
type chunkedReader struct {
	r     io.Reader
	chunk int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(p) > c.chunk {
		p = p[:c.chunk]
	}
	return c.r.Read(p)
}

func Test_EncodingWriter_MatchesEncode(t *testing.T) {
	for _, n := range []int{0, 1, 5, 6, 7, 8, 13, 14, 20, 1000, 70001} {
		for _, chunk := range []int{1, 3, 7, 4096} {
			data := randomData(int64(n), n)
			out := &bytes.Buffer{}

			w := NewEncodingWriter(out, int64(n))
			_, err := io.Copy(w, &chunkedReader{r: bytes.NewReader(data), chunk: chunk})
			require.NoError(t, err)
			require.NoError(t, w.Close())
			require.True(t, w.Closed())
			require.Equal(t, int64(n), w.Written())

			require.Equalf(t, enc.Encode(data), out.String(), "Mismatch for %d bytes in chunks of %d", n, chunk)
		}
	}
}

func Test_EncodingWriter_SizeMismatch(t *testing.T) {
	w := NewEncodingWriter(io.Discard, 4)
	_, err := w.Write([]byte("hello"))
	require.True(t, errors.Is(err, ErrSizeMismatch))

	_, err = w.Write([]byte("hel"))
	require.NoError(t, err)
	err = w.Close()
	require.True(t, errors.Is(err, ErrSizeMismatch))

	_, err = w.Write([]byte("l"))
	require.Equal(t, ErrWriterClosed, err)
	require.NoError(t, w.Close())
}
