package io

import (
	"time"

	"github.com/google/uuid"

	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// Document bundles a generated cycle with the roster and seed that produced
// it. It is the unit of storage: everything santa draw and santa reveal need
// to re-render or replay a draw later.
type Document struct {
	ID           string
	GeneratedAt  time.Time
	Seed         uint64
	Participants []string
	Partnerships []exchange.Partnership
	Cycle        exchange.Cycle
}

// NewDocument stamps a completed draw with a fresh id and UTC timestamp.
func NewDocument(n *exchange.Normalized, cycle exchange.Cycle, seed uint64) *Document {
	return &Document{
		ID:           uuid.NewString(),
		GeneratedAt:  time.Now().UTC().Truncate(time.Second),
		Seed:         seed,
		Participants: n.Participants,
		Partnerships: n.Partnerships,
		Cycle:        cycle,
	}
}

// Partners rebuilds the symmetric partner lookup from the stored pairs.
func (d *Document) Partners() exchange.Partners {
	partners := make(exchange.Partners, 2*len(d.Partnerships))
	for _, p := range d.Partnerships {
		partners[p.A] = p.B
		partners[p.B] = p.A
	}
	return partners
}

// document is the wire form of a Document.
type document struct {
	ID           string       `json:"id"`
	GeneratedAt  time.Time    `json:"generated_at"`
	Seed         uint64       `json:"seed"`
	Participants []string     `json:"participants"`
	Partnerships [][]string   `json:"partnerships,omitempty"`
	Assignments  []assignment `json:"assignments"`
}

type assignment struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}
