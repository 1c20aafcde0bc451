package exchange

import "math/rand/v2"

// Partition splits the normalized participants into two draw groups such that
// the members of every partnership land in different groups.
//
// Participants are visited in roster order. When a participant has a partner,
// the pair is placed on opposite sides with a coin flip deciding who goes
// where, and both count as assigned. Unpartnered participants go to whichever
// group is currently smaller, preferring group A on ties. This keeps the two
// groups balanced to within one member.
//
// Both returned groups are non-empty for any roster that passed Normalize.
func Partition(n *Normalized, rng *rand.Rand) (groupA, groupB []string) {
	assigned := make(map[string]bool, len(n.Participants))

	for _, p := range n.Participants {
		if assigned[p] {
			continue
		}

		if partner, ok := n.Partners[p]; ok {
			if rng.Float64() < 0.5 {
				groupA = append(groupA, p)
				groupB = append(groupB, partner)
			} else {
				groupB = append(groupB, p)
				groupA = append(groupA, partner)
			}
			assigned[p] = true
			assigned[partner] = true
			continue
		}

		if len(groupA) <= len(groupB) {
			groupA = append(groupA, p)
		} else {
			groupB = append(groupB, p)
		}
		assigned[p] = true
	}

	return groupA, groupB
}
