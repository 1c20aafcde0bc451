package exchange

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCycle is returned by [Cycle.Validate] when the cycle contains
	// no assignments.
	ErrEmptyCycle = errors.New("cycle contains no assignments")

	// ErrSelfAssignment is returned by [Cycle.Validate] when a participant
	// is assigned to themselves.
	ErrSelfAssignment = errors.New("participant assigned to themselves")

	// ErrDuplicateGiver is returned by [Cycle.Validate] when a participant
	// appears as giver in more than one assignment.
	ErrDuplicateGiver = errors.New("participant gives more than once")

	// ErrDuplicateReceiver is returned by [Cycle.Validate] when a participant
	// appears as receiver in more than one assignment.
	ErrDuplicateReceiver = errors.New("participant receives more than once")

	// ErrUnknownParticipant is returned by [Cycle.Validate] when an
	// assignment references a name that is not on the participant list.
	ErrUnknownParticipant = errors.New("assignment references unknown participant")

	// ErrMissingParticipant is returned by [Cycle.Validate] when a
	// participant has no assignment as giver or as receiver.
	ErrMissingParticipant = errors.New("participant missing from cycle")

	// ErrBrokenCycle is returned by [Cycle.Validate] when the assignments
	// split into more than one loop instead of one closed cycle.
	ErrBrokenCycle = errors.New("assignments do not form a single cycle")
)

// Validate checks that the cycle is one closed loop over exactly the given
// participants: every participant gives once, receives once, nobody draws
// themselves, and following the assignments from any starting point visits
// everyone before returning to the start.
//
// The first violation found is returned, wrapped around one of the sentinel
// errors in this package with the offending name in the message.
func (c Cycle) Validate(participants []string) error {
	if len(c) == 0 {
		return ErrEmptyCycle
	}

	known := make(map[string]bool, len(participants))
	for _, name := range participants {
		known[name] = true
	}

	next := make(map[string]string, len(c))
	received := make(map[string]bool, len(c))
	for _, a := range c {
		if a.Giver == a.Receiver {
			return fmt.Errorf("%w: %q", ErrSelfAssignment, a.Giver)
		}
		if !known[a.Giver] {
			return fmt.Errorf("%w: %q", ErrUnknownParticipant, a.Giver)
		}
		if !known[a.Receiver] {
			return fmt.Errorf("%w: %q", ErrUnknownParticipant, a.Receiver)
		}
		if _, dup := next[a.Giver]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateGiver, a.Giver)
		}
		if received[a.Receiver] {
			return fmt.Errorf("%w: %q", ErrDuplicateReceiver, a.Receiver)
		}
		next[a.Giver] = a.Receiver
		received[a.Receiver] = true
	}

	for _, name := range participants {
		if _, ok := next[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingParticipant, name)
		}
		if !received[name] {
			return fmt.Errorf("%w: %q", ErrMissingParticipant, name)
		}
	}

	// Walk the loop from the first giver. A single closed cycle visits every
	// assignment exactly once before returning to the start.
	start := c[0].Giver
	steps := 0
	for current := start; ; {
		current = next[current]
		steps++
		if current == start {
			break
		}
		if steps > len(c) {
			return ErrBrokenCycle
		}
	}
	if steps != len(c) {
		return ErrBrokenCycle
	}

	return nil
}

// Violation records an assignment that pairs two partnered participants.
type Violation struct {
	Giver    string
	Receiver string
}

// Violations returns the assignments that match a declared partnership.
// After Partition both partners sit in different groups, so only the two
// cross links can collide. resolveSeams repairs them in the common case,
// but rare stale-endpoint configurations can leave collisions behind.
func (c Cycle) Violations(partners Partners) []Violation {
	var violations []Violation
	for _, a := range c {
		if partners.Partnered(a.Giver, a.Receiver) {
			violations = append(violations, Violation{Giver: a.Giver, Receiver: a.Receiver})
		}
	}
	return violations
}
