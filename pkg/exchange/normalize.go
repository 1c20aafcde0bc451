package exchange

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/cyberscribe/secret-santa/pkg/errors"
)

// Normalized is the validated, deduplicated form of a Roster. It is the input
// to Partition and carries everything later stages need: the distinct
// participant list, the canonical partnership list, and the symmetric partner
// lookup map.
type Normalized struct {
	// Participants holds the distinct names in first-seen order.
	Participants []string

	// Partnerships holds one entry per declared pair. The orientation of
	// each entry matches its first occurrence in the input.
	Partnerships []Partnership

	// Partners is the symmetric lookup map built from Partnerships.
	Partners Partners

	// Warnings lists human-readable notices about removed duplicates.
	Warnings []string
}

// Normalize validates and deduplicates a roster.
//
// Duplicate participant names are removed keeping the first occurrence, and
// duplicate partnerships (in either orientation) collapse into the first
// occurrence. Every removal is reported in Normalized.Warnings rather than
// treated as an error.
//
// Normalize returns an error when the roster cannot produce a valid draw:
//   - fewer than three distinct participants
//   - more partnerships than the group split can keep apart
//   - a partner name that is not on the participant list
//   - a participant partnered with themselves or with two different people
func Normalize(r Roster) (*Normalized, error) {
	for _, name := range r.Participants {
		if err := errors.ValidateParticipantName(name); err != nil {
			return nil, err
		}
	}

	participants := lo.Uniq(r.Participants)
	var warnings []string
	if removed := len(r.Participants) - len(participants); removed > 0 {
		warnings = append(warnings, fmt.Sprintf("Removed %d duplicate participant(s).", removed))
	}

	partnerships, removed, err := dedupePartnerships(r.Partnerships)
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		warnings = append(warnings, fmt.Sprintf("Removed %d duplicate partnership(s).", removed))
	}

	if len(participants) <= 2 {
		return nil, errors.New(errors.ErrCodeInsufficientParticipants,
			"there must be more than 2 participants for the gift exchange to work (got %d)", len(participants))
	}

	if err := validatePartnerships(participants, partnerships); err != nil {
		return nil, err
	}

	partners := make(Partners, 2*len(partnerships))
	for _, p := range partnerships {
		if other, ok := partners[p.A]; ok && other != p.B {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"participant %q appears in more than one partnership", p.A)
		}
		if other, ok := partners[p.B]; ok && other != p.A {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"participant %q appears in more than one partnership", p.B)
		}
		partners[p.A] = p.B
		partners[p.B] = p.A
	}

	return &Normalized{
		Participants: participants,
		Partnerships: partnerships,
		Partners:     partners,
		Warnings:     warnings,
	}, nil
}

// dedupePartnerships collapses repeated pairs, treating {A,B} and {B,A} as
// the same partnership. The first occurrence decides the kept orientation.
func dedupePartnerships(pairs []Partnership) ([]Partnership, int, error) {
	seen := make(map[Partnership]bool, len(pairs))
	kept := make([]Partnership, 0, len(pairs))

	for _, p := range pairs {
		if p.A == p.B {
			return nil, 0, errors.New(errors.ErrCodeInvalidInput,
				"participant %q cannot be partnered with themselves", p.A)
		}
		if seen[p] || seen[Partnership{A: p.B, B: p.A}] {
			continue
		}
		seen[p] = true
		kept = append(kept, p)
	}

	return kept, len(pairs) - len(kept), nil
}

// validatePartnerships checks the partnership list against the deduplicated
// participant list. At most floor(n/2) partnerships fit, because the group
// split must place one member of every pair on each side.
func validatePartnerships(participants []string, partnerships []Partnership) error {
	if len(partnerships) == 0 {
		return nil
	}

	maxPartnerships := len(participants) / 2
	involved := make(map[string]bool, 2*len(partnerships))
	for _, p := range partnerships {
		involved[p.A] = true
		involved[p.B] = true
	}
	if len(involved) > 2*maxPartnerships {
		return errors.New(errors.ErrCodeTooManyPartnerships,
			"too many partnerships, maximum allowed is %d", maxPartnerships)
	}

	known := make(map[string]bool, len(participants))
	for _, name := range participants {
		known[name] = true
	}
	for _, p := range partnerships {
		if !known[p.A] {
			return errors.New(errors.ErrCodeUnknownPartner,
				"partner %q not found in the participant list", p.A)
		}
		if !known[p.B] {
			return errors.New(errors.ErrCodeUnknownPartner,
				"partner %q not found in the participant list", p.B)
		}
	}

	return nil
}
