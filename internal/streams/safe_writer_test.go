package streams

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SafeWriter_MultipleClose(t *testing.T) {
	f, err := os.CreateTemp("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj := NewSafeWriter(f)
	require.False(t, obj.Closed(), "Stream is closed when it shouldn't be!")

	err = obj.Close()
	require.NoErrorf(t, err, "Could not close file %s: %v", f.Name(), err)
	require.True(t, obj.Closed(), "Stream is not closed!")

	err = obj.Close()
	require.NoErrorf(t, err, "Error when retrying close on file %s: %v", f.Name(), err)
}

func Test_SafeWriter_NoDoubleWrap(t *testing.T) {
	obj := NewSafeWriter(NopWriteCloser(os.Stdout))
	require.Same(t, obj, NewSafeWriter(obj))
}
