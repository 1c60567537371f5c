package encode

import (
	"io"

	"github.com/bokysan/baseutf8/internal/commands"
	"github.com/bokysan/baseutf8/internal/logging"
	"github.com/bokysan/baseutf8/internal/streams"
	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes files (or stdin) into 7-bit clean text
type Command struct {
	Output    string `short:"o" long:"output"    env:"OUTPUT"    description:"Output file; '-' for stdout. Only valid with a single input." default:"-" yaml:"output"`
	Codec     string `short:"e" long:"codec"     env:"CODEC"     description:"Codec to use: BaseUTF8, Base128, Base91, Base64 or Raw" default:"BaseUTF8" yaml:"codec"`
	Extension string `short:"x" long:"extension" env:"EXTENSION" description:"Extension appended to every file when encoding several files" default:".b8" yaml:"extension"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Input files; '-' or none for stdin"`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	encoder, err := enc.ByName(c.Codec)
	if err != nil {
		return errors.WithStack(err)
	}

	target, err := commands.Outputs(c.Args.Files, c.Output, func(name string) string {
		return name + c.Extension
	})
	if err != nil {
		return errors.WithStack(err)
	}

	log.Debugf("Encoding with %v", encoder)

	return commands.EachInput(c.Args.Files, func(in *commands.Input) error {
		name := target(in.Name)
		out, err := commands.OpenOutput(name)
		if err != nil {
			return errors.Wrapf(err, "Could not create output for %v", in)
		}

		if err := Encode(encoder, in, out); err != nil {
			commands.DiscardOutput(out, name)
			return errors.Wrapf(err, "Could not encode %v", in)
		}

		if err := out.Close(); err != nil {
			return errors.Wrapf(err, "Could not close %v", out)
		}
		log.Infof("Encoded %v into %v", in, out)
		return nil
	})
}

// Encode copies the input to the output, encoding it on the way. BaseUTF8 input of known size is streamed;
// everything else is read into memory first.
func Encode(encoder enc.Encoder, in *commands.Input, out io.Writer) error {
	if _, ok := encoder.(*enc.BaseUTF8Encoder); ok && in.Size >= 0 {
		w := streams.NewEncodingWriter(out, in.Size)
		if _, err := io.CopyBuffer(w, in, make([]byte, streams.BufferSize)); err != nil {
			return errors.WithStack(err)
		}
		return w.Close()
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = io.WriteString(out, encoder.Encode(data))
	return errors.WithStack(err)
}
