package exchange

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// Roster is the raw input to a draw: participant names in file order plus the
// partnerships to keep apart. Duplicate names and duplicate partnerships are
// allowed here; Normalize removes them and reports what it removed.
type Roster struct {
	Participants []string
	Partnerships []Partnership
}

// Partnership marks two participants who must not draw each other.
// The orientation (who is A and who is B) carries no meaning.
type Partnership struct {
	A string
	B string
}

// Partners maps each partnered participant to their partner. The map is
// symmetric: if p["x"] == "y" then p["y"] == "x". Lookups on unpartnered
// names return the empty string.
type Partners map[string]string

// Partnered reports whether a and b are declared partners.
func (p Partners) Partnered(a, b string) bool {
	return a != "" && p[a] == b
}

// Assignment is a single directed gift edge: Giver buys a present for Receiver.
type Assignment struct {
	Giver    string
	Receiver string
}

// String renders the assignment in "Giver -> Receiver" form.
func (a Assignment) String() string {
	return a.Giver + " -> " + a.Receiver
}

// Cycle is an ordered list of assignments forming one closed gift loop.
// The order follows the construction: first group A's internal chain, then
// the two cross links, then group B's internal chain.
type Cycle []Assignment

// Givers returns the giver of each assignment in cycle order.
func (c Cycle) Givers() []string {
	return lo.Map(c, func(a Assignment, _ int) string { return a.Giver })
}

// Receivers returns the receiver of each assignment in cycle order.
func (c Cycle) Receivers() []string {
	return lo.Map(c, func(a Assignment, _ int) string { return a.Receiver })
}

// ReceiverOf returns who the given participant buys a present for.
// The second return value is false if the name is not a giver in the cycle.
func (c Cycle) ReceiverOf(giver string) (string, bool) {
	for _, a := range c {
		if a.Giver == giver {
			return a.Receiver, true
		}
	}
	return "", false
}

// Generate runs a complete draw: normalize the roster, partition it into two
// groups, and link the groups into a single cycle. The seed fully determines
// the outcome, so the same roster and seed always produce the same cycle.
//
// The returned Normalized carries the deduplicated roster, the symmetric
// partner map, and any deduplication warnings.
func Generate(r Roster, seed uint64) (Cycle, *Normalized, error) {
	n, err := Normalize(r)
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	groupA, groupB := Partition(n, rng)

	cycle, err := Link(groupA, groupB, n.Partners, rng)
	if err != nil {
		return nil, nil, err
	}
	return cycle, n, nil
}
