package enc

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var encoderTests = [][]byte{
	{},
	{0},
	{0xff},
	[]byte("Hello, world!"),
	[]byte("The quick brown fox jumps over the lazy dog"),
	{0x00, 0x80, 0xff, 0x7f, 0x01, 0xfe, 0x40, 0xc0, 0x3f},
	randomBytes(1, 1023),
}

func randomBytes(seed int64, n int) []byte {
	data := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(data)
	return data
}

func Test_AllEncodersRoundTrip(t *testing.T) {
	for _, encoder := range Encoders {
		cases := append(append([][]byte{}, encoderTests...), encoder.TestPatterns()...)
		for _, encoderTest := range cases {
			encoded := encoder.Encode(encoderTest)
			decoded, err := encoder.Decode(encoded)
			require.NoErrorf(t, err, "%v could not decode %v", encoder.Name(), encoderTest)
			require.Equalf(t, len(encoderTest), len(decoded), "%v changed the length", encoder.Name())
			if len(encoderTest) > 0 {
				require.Equal(t, encoderTest, decoded)
			}
		}
	}
}

func Test_Registry(t *testing.T) {
	e, err := ByName("baseutf8")
	require.NoError(t, err)
	require.Equal(t, DefaultEncoder, e)

	e, err = ByCode('X')
	require.NoError(t, err)
	require.Equal(t, "Base91", e.Name())

	_, err = ByName("base36")
	require.Error(t, err)
	require.Contains(t, fmt.Sprintf("%+v", err), "registry.go", "Error carries no stack trace")
	_, err = ByCode('?')
	require.Error(t, err)

	require.Len(t, Names(), len(Encoders))
	require.Equal(t, "BaseUTF8", Names()[0])
}

func Test_Base128Encoder(t *testing.T) {
	encoder := Base128Encoder{}
	for _, encoderTest := range encoderTests {
		encoded := encoder.Encode(encoderTest)
		require.Equal(t, (len(encoderTest)*8+6)/7, len(encoded))
		for _, c := range []byte(encoded) {
			require.Less(t, c, byte(0x80))
		}
	}
}

func Test_Base64Encoder(t *testing.T) {
	encoder := Base64Encoder{}
	for _, encoderTest := range encoderTests {
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, "=")
		require.NotContains(t, encoded, "+")
		require.NotContains(t, encoded, "/")
	}
}

func Test_Base91Encoder(t *testing.T) {
	encoder := Base91Encoder{}
	encoded := encoder.Encode([]byte("Hello, world!"))
	require.NotContains(t, encoded, "'")
	require.NotContains(t, encoded, "\\")
}
