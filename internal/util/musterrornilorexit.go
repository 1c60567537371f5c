package util

import (
	"os"

	"github.com/bokysan/baseutf8/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// ErrMalformedInput is returned when the input could not be decoded (EX_DATAERR)
	ErrMalformedInput = 65
	ErrGeneric        = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Input which could not be decoded exits with
// ErrMalformedInput. Any other kind of error returns a generic error code - 99.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	var flagsError *flags.Error
	var decodeError *enc.DecodeError

	switch {
	case errors.As(err, &flagsError):
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
			return
		}
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
	case errors.As(err, &decodeError):
		log.StandardLogger().
			WithError(err).
			WithField("kind", decodeError.Kind.String()).
			WithField("length", decodeError.Length).
			Logf(log.FatalLevel, "Malformed input: %v", err)
		log.Exit(ErrMalformedInput)
	default:
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}
}
