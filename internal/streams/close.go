package streams

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// BufferSize is the size of the copy buffer used when piping data through the encoder / decoder
const BufferSize = 16384

// LogClose closes the given closer and logs the error, if any. Already closed streams are skipped.
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(interface{ Closed() bool }); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	}
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// NopWriteCloser wraps the writer with a Close method that does nothing. Used for stdout, which must
// stay open after a command writes to it.
func NopWriteCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}
