package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/cyberscribe/secret-santa/pkg/errors"
	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// ReadJSON decodes an exchange document from r.
//
// The input must carry an assignments array in which every entry names both
// a giver and a receiver, and every stored partnership must pair exactly two
// names. Malformed input is reported as an INVALID_FORMAT error naming the
// offending entry. ReadJSON does not re-validate the cycle semantics; use
// [exchange.Cycle.Validate] on the result when integrity matters.
//
// The returned Document is independent of r, and ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode exchange document")
	}

	doc := &Document{
		ID:           data.ID,
		GeneratedAt:  data.GeneratedAt,
		Seed:         data.Seed,
		Participants: data.Participants,
		Cycle:        make(exchange.Cycle, len(data.Assignments)),
	}
	for i, p := range data.Partnerships {
		if len(p) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"partnership %d must pair exactly two names, got %d", i+1, len(p))
		}
		doc.Partnerships = append(doc.Partnerships, exchange.Partnership{A: p[0], B: p[1]})
	}
	for i, a := range data.Assignments {
		if a.Giver == "" || a.Receiver == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"assignment %d is missing a giver or receiver", i+1)
		}
		doc.Cycle[i] = exchange.Assignment{Giver: a.Giver, Receiver: a.Receiver}
	}

	return doc, nil
}

// ImportJSON reads the exchange document file at path.
//
// A missing file is reported as FILE_NOT_FOUND; everything else follows
// [ReadJSON] semantics.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "exchange document %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
