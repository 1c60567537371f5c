package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/baseutf8/internal/args"
	"github.com/bokysan/baseutf8/internal/commands/decode"
	"github.com/bokysan/baseutf8/internal/commands/encode"
	"github.com/bokysan/baseutf8/internal/commands/inspect"
	"github.com/bokysan/baseutf8/internal/commands/version"
	bFlags "github.com/bokysan/baseutf8/internal/flags"
	"github.com/bokysan/baseutf8/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseUTF8 is the main executable
type BaseUTF8 struct {
	parser *flags.Parser
}

// NewBaseUTF8 will create a new instance of BaseUTF8 and initialize the parser
func NewBaseUTF8() *BaseUTF8 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &BaseUTF8{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()
	b.setupInspect()

	return b
}

// setupGeneral will configure general options
func (b *BaseUTF8) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *BaseUTF8) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *BaseUTF8) setupEncode() {
	_, err := b.parser.AddCommand(
		"encode",
		"Encode binary data",
		"Encode files or standard input into 7-bit clean text, 7 bytes into 8 characters",
		encode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *BaseUTF8) setupDecode() {
	_, err := b.parser.AddCommand(
		"decode",
		"Decode text back to binary",
		"Decode files or standard input created by the encode command",
		decode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupInspect adds the `inspect` command
func (b *BaseUTF8) setupInspect() {
	_, err := b.parser.AddCommand(
		"inspect",
		"Show the encoding layout",
		"Show padding, group count and the size of the input under every available codec",
		inspect.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main starts baseutf8 and reads the configuration file
func main() {

	b := NewBaseUTF8()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := bFlags.NewYamlParser(b.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)

}
