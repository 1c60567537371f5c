package decode

import (
	"io"
	"strings"

	"github.com/bokysan/baseutf8/internal/commands"
	"github.com/bokysan/baseutf8/internal/logging"
	"github.com/bokysan/baseutf8/internal/streams"
	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command decodes files (or stdin) produced by the encode command
type Command struct {
	Output    string `short:"o" long:"output"    env:"OUTPUT"    description:"Output file; '-' for stdout. Only valid with a single input." default:"-" yaml:"output"`
	Codec     string `short:"e" long:"codec"     env:"CODEC"     description:"Codec to use: BaseUTF8, Base128, Base91, Base64 or Raw" default:"BaseUTF8" yaml:"codec"`
	Extension string `short:"x" long:"extension" env:"EXTENSION" description:"Extension stripped from every file when decoding several files" default:".b8" yaml:"extension"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Input files; '-' or none for stdin"`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

// OutputName strips the extension from the encoded file name, or appends `.decoded` if there is none
func (c *Command) OutputName(name string) string {
	if c.Extension != "" && strings.HasSuffix(name, c.Extension) && len(name) > len(c.Extension) {
		return strings.TrimSuffix(name, c.Extension)
	}
	return name + ".decoded"
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	decoder, err := enc.ByName(c.Codec)
	if err != nil {
		return errors.WithStack(err)
	}

	target, err := commands.Outputs(c.Args.Files, c.Output, c.OutputName)
	if err != nil {
		return errors.WithStack(err)
	}

	log.Debugf("Decoding with %v", decoder)

	return commands.EachInput(c.Args.Files, func(in *commands.Input) error {
		name := target(in.Name)
		out, err := commands.OpenOutput(name)
		if err != nil {
			return errors.Wrapf(err, "Could not create output for %v", in)
		}

		if err := Decode(decoder, in, out); err != nil {
			commands.DiscardOutput(out, name)
			return errors.Wrapf(err, "Could not decode %v", in)
		}

		if err := out.Close(); err != nil {
			return errors.Wrapf(err, "Could not close %v", out)
		}
		log.Infof("Decoded %v into %v", in, out)
		return nil
	})
}

// Decode copies the input to the output, decoding it on the way. BaseUTF8 files are streamed; stdin and
// other codecs are read and validated in full before anything is written. A streamed file has its length
// and padding checked before the first byte goes out.
func Decode(decoder enc.Encoder, in *commands.Input, out io.Writer) error {
	if _, ok := decoder.(*enc.BaseUTF8Encoder); ok && in.Size >= 0 {
		if in.Size%enc.EncodedGroupSize != 0 {
			return &enc.DecodeError{Kind: enc.InvalidLength, Length: int(in.Size)}
		}
		_, err := io.CopyBuffer(out, streams.NewDecodingReader(in, in.Size), make([]byte, streams.BufferSize))
		return err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.WithStack(err)
	}
	res, err := decoder.Decode(string(data))
	if err != nil {
		return err
	}
	_, err = out.Write(res)
	return errors.WithStack(err)
}
