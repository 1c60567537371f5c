package decode

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/bokysan/baseutf8/internal/commands"
	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, data []byte) *commands.Input {
	name := filepath.Join(t.TempDir(), "input.b8")
	require.NoError(t, os.WriteFile(name, data, 0644))
	in, err := commands.OpenInput(name)
	require.NoError(t, err)
	t.Cleanup(func() { in.Close() })
	return in
}

func Test_DecodeStreamed(t *testing.T) {
	data := make([]byte, 99999)
	rand.New(rand.NewSource(9)).Read(data)

	out := &bytes.Buffer{}
	require.NoError(t, Decode(enc.DefaultEncoder, writeInput(t, []byte(enc.Encode(data))), out))
	require.Equal(t, data, out.Bytes())
}

func Test_DecodeUnknownSize(t *testing.T) {
	in := &commands.Input{
		ReadCloser: io.NopCloser(bytes.NewReader([]byte{0, 5, 0, 0, 0, 0, 0, 0})),
		Name:       commands.Stdio,
		Size:       -1,
	}
	out := &bytes.Buffer{}
	require.NoError(t, Decode(enc.DefaultEncoder, in, out))
	require.Equal(t, []byte{0}, out.Bytes())
}

func Test_DecodeMalformedWritesNothing(t *testing.T) {
	in := &commands.Input{
		ReadCloser: io.NopCloser(bytes.NewReader(make([]byte, 12))),
		Name:       commands.Stdio,
		Size:       -1,
	}
	out := &bytes.Buffer{}
	err := Decode(enc.DefaultEncoder, in, out)
	require.True(t, errors.Is(err, enc.ErrInvalidLength))
	require.Zero(t, out.Len())
}

func Test_OutputName(t *testing.T) {
	cmd := NewCommand()
	cmd.Extension = ".b8"
	require.Equal(t, "data.bin", cmd.OutputName("data.bin.b8"))
	require.Equal(t, "data.bin.decoded", cmd.OutputName("data.bin"))
	require.Equal(t, ".b8.decoded", cmd.OutputName(".b8"))
}

func Test_ExecuteRemovesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.b8")
	bad := filepath.Join(dir, "bad.b8")
	require.NoError(t, os.WriteFile(good, []byte(enc.Encode([]byte("Hello, world!"))), 0644))
	require.NoError(t, os.WriteFile(bad, []byte(enc.Encode([]byte("Hello, world!")))[:13], 0644))

	cmd := NewCommand()
	cmd.Codec = "BaseUTF8"
	cmd.Output = commands.Stdio
	cmd.Extension = ".b8"
	cmd.Args.Files = []string{good, bad}

	err := cmd.Execute(nil)
	require.Error(t, err)

	var decodeErr *enc.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Equal(t, enc.InvalidLength, decodeErr.Kind)

	decoded, err := os.ReadFile(filepath.Join(dir, "good"))
	require.NoError(t, err)
	require.Equal(t, "Hello, world!", string(decoded))

	_, err = os.Stat(filepath.Join(dir, "bad"))
	require.True(t, os.IsNotExist(err))
}

func Test_DecodeFileErrorsMatchDecode(t *testing.T) {
	group := [enc.RawGroupSize]byte{0x7f}
	packed := enc.Pack(&group)

	inputs := map[string][]byte{
		"bad padding":             append(append([]byte{}, packed[:]...), enc.Encode([]byte("trailing"))...),
		"bad padding, stray byte": append(append([]byte{}, packed[:]...), 'x'),
		"truncated":               []byte(enc.Encode(make([]byte, 100))[:117]),
	}

	for name, data := range inputs {
		_, expected := enc.Decode(string(data))
		require.Errorf(t, expected, "%v should not decode", name)

		out := &bytes.Buffer{}
		err := Decode(enc.DefaultEncoder, writeInput(t, data), out)
		require.Equalf(t, expected, err, "Unexpected error for %v", name)
		require.Zerof(t, out.Len(), "Output written for %v", name)
	}
}
