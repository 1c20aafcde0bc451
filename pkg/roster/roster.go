// Package roster reads draw rosters from files.
//
// A roster names the participants and, optionally, the partnerships to keep
// apart. Three formats are supported behind the [Parser] interface:
//
//   - text: one participant per line, partnerships in a separate
//     comma-separated file loaded with [LoadPartners]
//   - TOML: participants list plus [[partnership]] tables in one file
//   - YAML: participants list plus a partnerships list in one file
//
// [Detect] picks a parser by filename, and [Load] is the convenience path
// used by the CLI. Parsers only deal with syntax; semantic checks such as
// deduplication and partner validation happen in exchange.Normalize.
package roster

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/cyberscribe/secret-santa/pkg/errors"
	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// Parser reads a roster from a single file.
type Parser interface {
	// Parse reads the roster file at path.
	Parse(path string) (exchange.Roster, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the roster format identifier (e.g., "text", "toml").
	Type() string
}

// Detect finds a parser that supports the given file path.
// Returns an UNSUPPORTED error if no parser matches.
func Detect(path string, parsers ...Parser) (Parser, error) {
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported roster format: %s", name)
}

// DefaultParsers returns the built-in parsers in detection order.
func DefaultParsers() []Parser {
	return []Parser{&TOML{}, &YAML{}, &Text{}}
}

// Load reads the roster at path using the first matching built-in parser.
func Load(path string) (exchange.Roster, error) {
	if err := errors.ValidateRosterFilename(path); err != nil {
		return exchange.Roster{}, err
	}
	p, err := Detect(path, DefaultParsers()...)
	if err != nil {
		return exchange.Roster{}, err
	}
	return p.Parse(path)
}

// readError maps file read failures onto the error taxonomy.
func readError(path string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "roster file %s does not exist", path)
	}
	return errors.Wrap(errors.ErrCodeInvalidRoster, err, "read roster file %s", path)
}
