package streams

import (
	"bufio"
	"io"

	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/pkg/errors"
)

var (
	// ErrSizeMismatch is returned when the number of bytes written differs from the size declared up front
	ErrSizeMismatch = errors.New("number of bytes written does not match the declared size")
	// ErrWriterClosed is returned when writing to an already closed EncodingWriter
	ErrWriterClosed = errors.New("encoding writer is closed")
)

// EncodingWriter packs everything written to it into 7-bit clean groups. The padding header precedes the
// data, so the total size must be known when the writer is created. The output is byte-for-byte the same
// as enc.Encode of the concatenated input.
type EncodingWriter struct {
	w       *bufio.Writer
	size    int64
	written int64
	group   [enc.RawGroupSize]byte
	fill    int
	closed  bool
	err     error
}

// NewEncodingWriter creates a writer which expects exactly `size` bytes to be written before Close.
// Closing the EncodingWriter does not close `w`.
func NewEncodingWriter(w io.Writer, size int64) *EncodingWriter {
	ew := &EncodingWriter{
		w:    bufio.NewWriterSize(w, BufferSize),
		size: size,
		fill: 1,
	}
	ew.group[0] = byte(enc.Padding(int(size)))
	return ew
}

func (ew *EncodingWriter) Write(p []byte) (int, error) {
	if ew.closed {
		return 0, ErrWriterClosed
	}
	if ew.err != nil {
		return 0, ew.err
	}
	if ew.written+int64(len(p)) > ew.size {
		return 0, errors.Wrapf(ErrSizeMismatch, "writing %d bytes would exceed the declared size of %d", len(p), ew.size)
	}

	n := 0
	for len(p) > 0 {
		c := copy(ew.group[ew.fill:], p)
		ew.fill += c
		ew.written += int64(c)
		n += c
		p = p[c:]
		if ew.fill == enc.RawGroupSize {
			if err := ew.flushGroup(); err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

func (ew *EncodingWriter) flushGroup() error {
	packed := enc.Pack(&ew.group)
	if _, err := ew.w.Write(packed[:]); err != nil {
		ew.err = errors.WithStack(err)
		return ew.err
	}
	ew.group = [enc.RawGroupSize]byte{}
	ew.fill = 0
	return nil
}

// Written returns the number of raw bytes accepted so far
func (ew *EncodingWriter) Written() int64 {
	return ew.written
}

// Close writes the final, zero-padded group and flushes the output. It fails with ErrSizeMismatch when
// fewer bytes were written than declared.
func (ew *EncodingWriter) Close() error {
	if ew.closed {
		return nil
	}
	ew.closed = true
	if ew.err != nil {
		return ew.err
	}
	if ew.written != ew.size {
		return errors.Wrapf(ErrSizeMismatch, "wrote %d bytes, declared %d", ew.written, ew.size)
	}
	if ew.fill > 0 {
		if err := ew.flushGroup(); err != nil {
			return err
		}
	}
	return errors.WithStack(ew.w.Flush())
}

// Closed will return `true` if EncodingWriter.Close has been called at least once
func (ew *EncodingWriter) Closed() bool {
	return ew.closed
}
