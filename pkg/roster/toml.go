package roster

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cyberscribe/secret-santa/pkg/errors"
	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// TOML parses single-file rosters in TOML form:
//
//	participants = ["Alice", "Bob", "Carol"]
//
//	[[partnership]]
//	pair = ["Alice", "Bob"]
type TOML struct{}

type tomlRoster struct {
	Participants []string   `toml:"participants"`
	Partnerships []tomlPair `toml:"partnership"`
}

type tomlPair struct {
	Pair []string `toml:"pair"`
}

func (t *TOML) Type() string { return "toml" }

func (t *TOML) Supports(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".toml")
}

func (t *TOML) Parse(path string) (exchange.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return exchange.Roster{}, readError(path, err)
	}

	var raw tomlRoster
	if err := toml.Unmarshal(data, &raw); err != nil {
		return exchange.Roster{}, errors.Wrap(errors.ErrCodeInvalidRoster, err, "parse %s", path)
	}

	r := exchange.Roster{Participants: raw.Participants}
	for i, p := range raw.Partnerships {
		if len(p.Pair) != 2 {
			return exchange.Roster{}, errors.New(errors.ErrCodeInvalidRoster,
				"%s: partnership %d must name exactly two participants, got %d", path, i+1, len(p.Pair))
		}
		r.Partnerships = append(r.Partnerships, exchange.Partnership{A: p.Pair[0], B: p.Pair[1]})
	}

	return r, nil
}
