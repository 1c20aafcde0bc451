package roster

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/cyberscribe/secret-santa/pkg/errors"
	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// Text parses plain participant lists: one name per line, surrounding
// whitespace trimmed, blank lines skipped. Partnerships live in a separate
// file read by LoadPartners, mirroring the two-file CLI input.
type Text struct{}

func (t *Text) Type() string { return "text" }

func (t *Text) Supports(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".txt")
}

func (t *Text) Parse(path string) (exchange.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return exchange.Roster{}, readError(path, err)
	}

	var participants []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			participants = append(participants, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return exchange.Roster{}, errors.Wrap(errors.ErrCodeInvalidRoster, err, "scan %s", path)
	}

	return exchange.Roster{Participants: participants}, nil
}

// LoadPartners reads partner pairs from a comma-separated file: one pair per
// line as "A, B". Blank lines are skipped; any other line that does not
// split into exactly two non-empty names is an INVALID_ROSTER error naming
// the line.
func LoadPartners(path string) ([]exchange.Partnership, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}

	var pairs []exchange.Partnership
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidRoster,
				"%s:%d: expected exactly two comma-separated names, got %d", path, lineno, len(fields))
		}
		a, b := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if a == "" || b == "" {
			return nil, errors.New(errors.ErrCodeInvalidRoster,
				"%s:%d: partner name is empty", path, lineno)
		}
		pairs = append(pairs, exchange.Partnership{A: a, B: b})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "scan %s", path)
	}

	return pairs, nil
}
