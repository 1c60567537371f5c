package inspect

import (
	"bytes"
	"testing"

	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/stretchr/testify/require"
)

func Test_Inspect(t *testing.T) {
	r := Inspect("hello", []byte("Hello, world!"))
	require.Equal(t, 13, r.Size)
	require.Equal(t, 0, r.Padding)
	require.Equal(t, 2, r.Groups)
	require.Equal(t, 16, r.EncodedSize)
	require.Len(t, r.Codecs, len(enc.Encoders))
	require.Equal(t, "BaseUTF8", r.Codecs[0].Name)
	require.Equal(t, 16, r.Codecs[0].Size)

	out := &bytes.Buffer{}
	require.NoError(t, r.Print(out))
	require.Contains(t, out.String(), "hello: 13 bytes, padding 0, 2 groups, 16 bytes encoded")
	require.Contains(t, out.String(), "BaseUTF8")
}

func Test_InspectEmpty(t *testing.T) {
	r := Inspect("empty", nil)
	require.Equal(t, 6, r.Padding)
	require.Equal(t, 1, r.Groups)
	require.Equal(t, 8, r.EncodedSize)
	for _, c := range r.Codecs {
		require.Equal(t, 0.0, c.Overhead)
	}
}
