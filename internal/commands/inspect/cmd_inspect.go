package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/baseutf8/internal/commands"
	"github.com/bokysan/baseutf8/internal/logging"
	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reports how the input would be laid out by the encoder and how the alternatives compare
type Command struct {
	Encoded bool `short:"d" long:"encoded" env:"ENCODED" description:"Input is already encoded; decode it before inspecting" yaml:"encoded"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Input files; '-' or none for stdin"`
	} `positional-args:"yes"`

	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: os.Stdout,
	}
}

// CodecReport is the size of the input when encoded by one codec
type CodecReport struct {
	Name     string
	Size     int
	Overhead float64
}

// Report describes the layout of one input
type Report struct {
	Name        string
	Size        int
	Padding     int
	Groups      int
	EncodedSize int
	Codecs      []CodecReport
}

// Inspect builds the report for the given raw data
func Inspect(name string, data []byte) *Report {
	r := &Report{
		Name:        name,
		Size:        len(data),
		Padding:     enc.Padding(len(data)),
		EncodedSize: enc.EncodedLen(len(data)),
	}
	r.Groups = r.EncodedSize / enc.EncodedGroupSize

	for _, e := range enc.Encoders {
		size := len(e.Encode(data))
		overhead := 0.0
		if len(data) > 0 {
			overhead = float64(size-len(data)) / float64(len(data)) * 100
		}
		r.Codecs = append(r.Codecs, CodecReport{
			Name:     e.Name(),
			Size:     size,
			Overhead: overhead,
		})
	}
	return r
}

// Print writes the report in a human readable form
func (r *Report) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: %d bytes, padding %d, %d groups, %d bytes encoded\n",
		r.Name, r.Size, r.Padding, r.Groups, r.EncodedSize); err != nil {
		return errors.WithStack(err)
	}
	for _, c := range r.Codecs {
		if _, err := fmt.Fprintf(w, "  %-10s %10d bytes %8.2f%%\n", c.Name, c.Size, c.Overhead); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	return commands.EachInput(c.Args.Files, func(in *commands.Input) error {
		data, err := io.ReadAll(in)
		if err != nil {
			return errors.Wrapf(err, "Could not read %v", in)
		}

		if c.Encoded {
			if data, err = enc.Decode(string(data)); err != nil {
				return errors.Wrapf(err, "Could not decode %v", in)
			}
		}

		if log.IsLevelEnabled(log.TraceLevel) {
			var first [enc.RawGroupSize]byte
			first[0] = byte(enc.Padding(len(data)))
			copy(first[1:], data)
			log.Tracef("First group of %v:\n%s", in, spew.Sdump(first, enc.Pack(&first)))
		}

		return Inspect(in.String(), data).Print(c.out)
	})
}
