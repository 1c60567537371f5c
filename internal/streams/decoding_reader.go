package streams

import (
	"io"

	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/pkg/errors"
)

// DecodingReader reverses EncodingWriter / enc.Encode on the fly. It keeps one group of look-ahead, as the
// last group has to be trimmed by the padding recorded in the first one.
//
// Errors are *enc.DecodeError values. When the size of the encoded input is known, errors match enc.Decode:
// the length is checked before anything is read and both kinds carry the full size. With an unknown size
// (-1) the Length is the number of bytes consumed when the problem was noticed, and the padding field is
// validated as soon as the first group arrives.
type DecodingReader struct {
	r        io.Reader
	size     int64
	cur      [enc.EncodedGroupSize]byte
	next     [enc.EncodedGroupSize]byte
	block    [enc.RawGroupSize]byte
	pending  []byte
	padding  int
	consumed int64
	started  bool
	done     bool
	err      error
}

// NewDecodingReader creates a new reader decoding the data read from `r`. `size` is the total length of
// the encoded input, or -1 if it is not known.
func NewDecodingReader(r io.Reader, size int64) *DecodingReader {
	return &DecodingReader{
		r:    r,
		size: size,
	}
}

// errorLength is the length reported in decode errors
func (d *DecodingReader) errorLength() int {
	if d.size >= 0 {
		return int(d.size)
	}
	return int(d.consumed)
}

func (d *DecodingReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(d.pending) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.err = d.advance()
	}
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

// advance decodes the next group into `pending`. It returns io.EOF after the last group.
func (d *DecodingReader) advance() error {
	if d.done {
		return io.EOF
	}

	if !d.started {
		d.started = true
		if d.size >= 0 && d.size%enc.EncodedGroupSize != 0 {
			return &enc.DecodeError{Kind: enc.InvalidLength, Length: int(d.size)}
		}
		ok, err := d.readGroup(&d.cur)
		if err != nil {
			return err
		}
		if !ok {
			// Empty input decodes into empty output
			d.done = true
			return io.EOF
		}
		d.block = enc.Unpack(&d.cur)
		d.padding = int(d.block[0])
		if d.padding >= enc.RawGroupSize {
			return &enc.DecodeError{Kind: enc.InvalidPadding, Length: d.errorLength()}
		}

		more, err := d.readGroup(&d.next)
		if err != nil {
			return err
		}
		if !more {
			d.done = true
			d.pending = d.block[1 : enc.RawGroupSize-d.padding]
			return nil
		}
		d.pending = d.block[1:]
		d.cur = d.next
		return nil
	}

	more, err := d.readGroup(&d.next)
	if err != nil {
		return err
	}
	d.block = enc.Unpack(&d.cur)
	if !more {
		d.done = true
		d.pending = d.block[:enc.RawGroupSize-d.padding]
		return nil
	}
	d.pending = d.block[:]
	d.cur = d.next
	return nil
}

// readGroup reads exactly one group. It returns false on a clean end of stream.
func (d *DecodingReader) readGroup(g *[enc.EncodedGroupSize]byte) (bool, error) {
	n, err := io.ReadFull(d.r, g[:])
	d.consumed += int64(n)
	switch {
	case err == io.EOF:
		return false, nil
	case err == io.ErrUnexpectedEOF:
		return false, &enc.DecodeError{Kind: enc.InvalidLength, Length: d.errorLength()}
	case err != nil:
		return false, errors.WithStack(err)
	}
	return true, nil
}

// Consumed returns the number of encoded bytes read from the underlying reader so far
func (d *DecodingReader) Consumed() int64 {
	return d.consumed
}
