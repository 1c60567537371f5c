package enc

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultEncoder is used when no codec is selected explicitly
var DefaultEncoder Encoder = &BaseUTF8Encoder{}

// Encoders lists all known encoders, the default one first
var Encoders = []Encoder{
	DefaultEncoder,
	&Base128Encoder{},
	&Base91Encoder{},
	&Base64Encoder{},
	&RawEncoder{},
}

// ByName finds the encoder by its name, ignoring case
func ByName(name string) (Encoder, error) {
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	return nil, errors.Errorf("unknown encoder: %q", name)
}

// ByCode finds the encoder by its one-letter code
func ByCode(code byte) (Encoder, error) {
	for _, e := range Encoders {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Errorf("unknown encoder code: %q", code)
}

// Names returns the names of all registered encoders
func Names() []string {
	res := make([]string, 0, len(Encoders))
	for _, e := range Encoders {
		res = append(res, e.Name())
	}
	return res
}
