package streams

import (
	"fmt"
	"io"
)

// closeTracker is an output which knows whether it has been closed already
type closeTracker interface {
	io.WriteCloser
	Closed() bool
}

// NamedWriter implements the io.WriteCloser interface as well as fmt.Stringer. The name shows up in log
// messages, e.g. the output file of the encode command. Close is safe to call multiple times.
type NamedWriter struct {
	closeTracker
	name string
}

// NewNamedWriter will, unsurprisingly, create a new NamedWriter with a given name
func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		closeTracker: NewSafeWriter(wrapped),
		name:         name,
	}
}

func (ns *NamedWriter) String() string {
	result := ns.name

	var s io.WriteCloser = ns.closeTracker
	for {
		t, ok := s.(interface{ Unwrap() io.WriteCloser })
		if !ok {
			break
		}
		u := t.Unwrap()
		if v, ok := u.(fmt.Stringer); ok {
			result += "->" + v.String()
			break
		}
		s = u
	}

	return result
}

func (ns *NamedWriter) Unwrap() io.WriteCloser {
	return ns.closeTracker
}
