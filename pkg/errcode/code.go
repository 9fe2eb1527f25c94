// Package errcode implements the standardized 12-character error code
// scheme and the error stack passed between services.
//
// A version-0 code reads, position by position:
//
//	| 1-2 | 3       | 4     | 5    | 6-9   | 10-12    |
//	| DE  | version | level | type | scene | specific |
//
// e.g. "DE0510001001". The scene is the event code assigned to an
// application; the specific part identifies the exact failure.
package errcode

import (
	"fmt"
	"strings"
)

const (
	codeLength     = 12
	prefix         = "DE"
	defaultVersion = "0"
)

// Code is a structured error code. The zero value is not valid; build
// codes with New, Parse, or MustParse.
type Code struct {
	Prefix   string `json:"errorPrefix"`
	Version  string `json:"version"`
	Level    string `json:"errorLevel"`
	Type     string `json:"errorType"`
	Scene    string `json:"errorScene"`
	Specific string `json:"errorSpecific"`
}

// New builds a version-0 code from its parts.
func New(level, typ, scene, specific string) Code {
	return Code{
		Prefix:   prefix,
		Version:  defaultVersion,
		Level:    level,
		Type:     typ,
		Scene:    scene,
		Specific: specific,
	}
}

// Parse decodes a canonical 12-character code such as "DE0010010027".
// Malformed input is an explicit error rather than a silent fallback.
func Parse(s string) (Code, error) {
	if len(s) != codeLength {
		return Code{}, fmt.Errorf("errcode: code must be %d characters, got %d", codeLength, len(s))
	}
	if !strings.HasPrefix(s, prefix) {
		return Code{}, fmt.Errorf("errcode: code must start with %q: %q", prefix, s)
	}
	return Code{
		Prefix:   s[0:2],
		Version:  s[2:3],
		Level:    s[3:4],
		Type:     s[4:5],
		Scene:    s[5:9],
		Specific: s[9:12],
	}, nil
}

// MustParse is Parse that panics on malformed input. For package-level
// code declarations.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String encodes the code canonically. Malformed field values encode as
// the reserved processing-error code rather than producing a corrupt
// string.
func (c Code) String() string {
	if !c.valid() {
		return CodeProcessingError
	}
	return c.prefixForVersion() + c.Version + c.Level + c.Type + c.Scene + c.Specific
}

func (c Code) valid() bool {
	return len(c.Version) == 1 &&
		len(c.Level) == 1 &&
		len(c.Type) == 1 &&
		len(c.Scene) == c.sceneLength() &&
		len(c.Specific) == 3 &&
		len(c.prefixForVersion()) == 2
}

// sceneLength is 4 for version-0 codes; later versions widen the scene
// to 8 characters.
func (c Code) sceneLength() int {
	if c.Version == defaultVersion {
		return 4
	}
	return 8
}

func (c Code) prefixForVersion() string {
	if c.Version == defaultVersion {
		return prefix
	}
	return c.Prefix
}
