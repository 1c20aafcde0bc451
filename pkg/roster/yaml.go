package roster

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cyberscribe/secret-santa/pkg/errors"
	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// YAML parses single-file rosters in YAML form:
//
//	participants:
//	  - Alice
//	  - Bob
//	  - Carol
//	partnerships:
//	  - [Alice, Bob]
type YAML struct{}

type yamlRoster struct {
	Participants []string   `yaml:"participants"`
	Partnerships [][]string `yaml:"partnerships"`
}

func (y *YAML) Type() string { return "yaml" }

func (y *YAML) Supports(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

func (y *YAML) Parse(path string) (exchange.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return exchange.Roster{}, readError(path, err)
	}

	var raw yamlRoster
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return exchange.Roster{}, errors.Wrap(errors.ErrCodeInvalidRoster, err, "parse %s", path)
	}

	r := exchange.Roster{Participants: raw.Participants}
	for i, pair := range raw.Partnerships {
		if len(pair) != 2 {
			return exchange.Roster{}, errors.New(errors.ErrCodeInvalidRoster,
				"%s: partnership %d must name exactly two participants, got %d", path, i+1, len(pair))
		}
		r.Partnerships = append(r.Partnerships, exchange.Partnership{A: pair[0], B: pair[1]})
	}

	return r, nil
}
