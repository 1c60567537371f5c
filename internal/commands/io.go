package commands

import (
	"io"
	"os"

	"github.com/bokysan/baseutf8/internal/streams"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Stdio is the file name which stands for standard input or standard output
const Stdio = "-"

// Input is an opened input file. Size is -1 when it is not known up front, e.g. for pipes.
type Input struct {
	io.ReadCloser
	Name string
	Size int64
}

func (i *Input) String() string {
	if i.Name == Stdio {
		return "stdin"
	}
	return i.Name
}

// OpenInput opens the named file or, for `-`, wraps the standard input
func OpenInput(name string) (*Input, error) {
	if name == "" || name == Stdio {
		return &Input{
			ReadCloser: io.NopCloser(os.Stdin),
			Name:       Stdio,
			Size:       -1,
		}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	size := int64(-1)
	if stat, err := f.Stat(); err != nil {
		log.WithError(err).Warnf("Could not stat %v, size unknown", name)
	} else if stat.Mode().IsRegular() {
		size = stat.Size()
	}

	return &Input{
		ReadCloser: f,
		Name:       name,
		Size:       size,
	}, nil
}

// OpenOutput creates (truncates) the named file or, for `-`, wraps the standard output. Closing the
// standard output wrapper leaves stdout open.
func OpenOutput(name string) (*streams.NamedWriter, error) {
	if name == "" || name == Stdio {
		return streams.NewNamedWriter(streams.NopWriteCloser(os.Stdout), "stdout"), nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return streams.NewNamedWriter(f, name), nil
}

// DiscardOutput closes the output and removes the file behind it, so that a failed conversion does not
// leave partial results behind. Standard output cannot be taken back.
func DiscardOutput(out *streams.NamedWriter, name string) {
	_ = streams.LogClose(out)
	if name == "" || name == Stdio {
		return
	}
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warnf("Could not remove %v", name)
	}
}

// EachInput calls fn for every named input, stdin when the list is empty. A failing input does not stop
// the others; all failures are returned together.
func EachInput(files []string, fn func(*Input) error) error {
	if len(files) == 0 {
		files = []string{Stdio}
	}

	var result error
	for _, name := range files {
		in, err := OpenInput(name)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "Could not open %v", name))
			continue
		}
		log.Debugf("Processing %v (%d bytes)", in, in.Size)
		if err := fn(in); err != nil {
			result = multierror.Append(result, err)
		}
		if err := streams.LogClose(in); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

// Outputs decides where the result for every input goes. A single input goes to `output`; several inputs
// each go next to their source, named by `rename`.
func Outputs(files []string, output string, rename func(string) string) (func(string) string, error) {
	if len(files) <= 1 {
		return func(string) string { return output }, nil
	}
	if output != "" && output != Stdio {
		return nil, errors.Errorf("--output cannot be used with %d input files", len(files))
	}
	for _, f := range files {
		if f == Stdio {
			return nil, errors.Errorf("stdin cannot be combined with other input files")
		}
	}
	return rename, nil
}
