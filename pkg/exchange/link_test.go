package exchange

import (
	"slices"
	"testing"

	"github.com/cyberscribe/secret-santa/pkg/errors"
)

func TestLink_SingleClosedCycle(t *testing.T) {
	n := mustNormalize(t, Roster{
		Participants: []string{"A", "B", "C", "D", "E", "F"},
		Partnerships: []Partnership{{A: "A", B: "B"}, {A: "C", B: "D"}},
	})

	for seed := uint64(0); seed < 50; seed++ {
		rng := testRNG(seed)
		groupA, groupB := Partition(n, rng)

		cycle, err := Link(groupA, groupB, n.Partners, rng)
		if err != nil {
			t.Fatalf("seed %d: Link() error = %v", seed, err)
		}
		if len(cycle) != len(n.Participants) {
			t.Fatalf("seed %d: len(cycle) = %d, want %d", seed, len(cycle), len(n.Participants))
		}
		if err := cycle.Validate(n.Participants); err != nil {
			t.Fatalf("seed %d: Validate() error = %v\ncycle: %v", seed, err, cycle)
		}
	}
}

func TestLink_NoReciprocalGifting(t *testing.T) {
	n := mustNormalize(t, Roster{
		Participants: []string{"A", "B", "C", "D", "E"},
	})

	for seed := uint64(0); seed < 50; seed++ {
		rng := testRNG(seed)
		groupA, groupB := Partition(n, rng)

		cycle, err := Link(groupA, groupB, n.Partners, rng)
		if err != nil {
			t.Fatalf("seed %d: Link() error = %v", seed, err)
		}
		for _, a := range cycle {
			if r, ok := cycle.ReceiverOf(a.Receiver); ok && r == a.Giver {
				t.Fatalf("seed %d: reciprocal gifting %s <-> %s", seed, a.Giver, a.Receiver)
			}
		}
	}
}

func TestLink_EdgeOrderFollowsConstruction(t *testing.T) {
	n := mustNormalize(t, Roster{
		Participants: []string{"A", "B", "C", "D", "E", "F", "G"},
	})

	rng := testRNG(3)
	groupA, groupB := Partition(n, rng)
	cycle, err := Link(groupA, groupB, n.Partners, rng)
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	inA := make(map[string]bool, len(groupA))
	for _, name := range groupA {
		inA[name] = true
	}

	// Internal A edges, then the two cross links, then internal B edges.
	for i, a := range cycle[:len(groupA)-1] {
		if !inA[a.Giver] || !inA[a.Receiver] {
			t.Errorf("edge %d (%v) should stay inside group A", i, a)
		}
	}
	cross1 := cycle[len(groupA)-1]
	cross2 := cycle[len(groupA)]
	if !inA[cross1.Giver] || inA[cross1.Receiver] {
		t.Errorf("first cross link %v should go A -> B", cross1)
	}
	if inA[cross2.Giver] || !inA[cross2.Receiver] {
		t.Errorf("second cross link %v should go B -> A", cross2)
	}
	for i, a := range cycle[len(groupA)+1:] {
		if inA[a.Giver] || inA[a.Receiver] {
			t.Errorf("edge %d (%v) should stay inside group B", i, a)
		}
	}
}

func TestLink_DoesNotModifyInputs(t *testing.T) {
	groupA := []string{"A", "C", "E"}
	groupB := []string{"B", "D"}
	wantA := slices.Clone(groupA)
	wantB := slices.Clone(groupB)

	if _, err := Link(groupA, groupB, nil, testRNG(9)); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	if !slices.Equal(groupA, wantA) || !slices.Equal(groupB, wantB) {
		t.Errorf("Link() modified inputs: %v %v", groupA, groupB)
	}
}

func TestLink_EmptyGroup(t *testing.T) {
	_, err := Link(nil, []string{"A"}, nil, testRNG(1))
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Link() error = %v, want INTERNAL_ERROR", err)
	}
}

func TestResolveSeams_RepairsFirstCrossLink(t *testing.T) {
	partners := Partners{"X": "Y", "Y": "X"}
	a := []string{"P", "X"}
	b := []string{"Y", "Q"}

	resolveSeams(a, b, partners)

	if b[0] != "Q" {
		t.Errorf("b = %v, want Q moved to the front", b)
	}
	if partners.Partnered(a[len(a)-1], b[0]) {
		t.Errorf("cross link %s -> %s still pairs partners", a[len(a)-1], b[0])
	}
}

func TestResolveSeams_RepairsSecondCrossLink(t *testing.T) {
	partners := Partners{"X": "Y", "Y": "X"}
	a := []string{"X", "P"}
	b := []string{"Q", "Y"}

	resolveSeams(a, b, partners)

	if a[0] != "P" {
		t.Errorf("a = %v, want P moved to the front", a)
	}
	if partners.Partnered(b[len(b)-1], a[0]) {
		t.Errorf("cross link %s -> %s still pairs partners", b[len(b)-1], a[0])
	}
}

func TestResolveSeams_StaleEndpointKeepsCollision(t *testing.T) {
	// Both checks read the endpoints captured before either swap. The first
	// swap moves S to the front of b, and the second check still compares
	// against the old tail, so the repaired groups collide again at the seam.
	partners := Partners{"P": "S", "S": "P", "Q": "R", "R": "Q"}
	a := []string{"P", "Q"}
	b := []string{"R", "S"}

	resolveSeams(a, b, partners)

	if !slices.Equal(b, []string{"S", "R"}) {
		t.Fatalf("b = %v, want [S R]", b)
	}
	if !slices.Equal(a, []string{"Q", "P"}) {
		t.Fatalf("a = %v, want [Q P]", a)
	}
	if !partners.Partnered(a[len(a)-1], b[0]) {
		t.Error("expected the stale-endpoint collision P -> S to survive")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	roster := Roster{
		Participants: []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"},
		Partnerships: []Partnership{{A: "Alice", B: "Bob"}},
	}

	c1, _, err := Generate(roster, 1234)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	c2, _, err := Generate(roster, 1234)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !slices.Equal(c1, c2) {
		t.Errorf("same seed produced different cycles:\n%v\n%v", c1, c2)
	}
}

func TestGenerate_RespectsPartnerships(t *testing.T) {
	roster := Roster{
		Participants: []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Henry"},
		Partnerships: []Partnership{
			{A: "Alice", B: "Bob"},
			{A: "Carol", B: "Dave"},
		},
	}

	for seed := uint64(0); seed < 100; seed++ {
		cycle, n, err := Generate(roster, seed)
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}
		if err := cycle.Validate(n.Participants); err != nil {
			t.Fatalf("seed %d: Validate() error = %v", seed, err)
		}
		if v := cycle.Violations(n.Partners); len(v) > 0 {
			t.Fatalf("seed %d: partner violations %v in cycle %v", seed, v, cycle)
		}
	}
}

func TestGenerate_SixSinglesFormFullCycle(t *testing.T) {
	roster := Roster{
		Participants: []string{"A", "B", "C", "D", "E", "F"},
	}

	for seed := uint64(0); seed < 200; seed++ {
		cycle, n, err := Generate(roster, seed)
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}
		if len(cycle) != 6 {
			t.Fatalf("seed %d: len(cycle) = %d, want 6", seed, len(cycle))
		}
		if err := cycle.Validate(n.Participants); err != nil {
			t.Fatalf("seed %d: Validate() error = %v\ncycle: %v", seed, err, cycle)
		}
	}
}

func TestGenerate_PartneredPairNeverMatched(t *testing.T) {
	roster := Roster{
		Participants: []string{"A", "B", "C", "D"},
		Partnerships: []Partnership{{A: "A", B: "B"}},
	}

	for seed := uint64(0); seed < 500; seed++ {
		cycle, _, err := Generate(roster, seed)
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}
		for _, a := range cycle {
			if (a.Giver == "A" && a.Receiver == "B") || (a.Giver == "B" && a.Receiver == "A") {
				t.Fatalf("seed %d: partners matched by %s -> %s in cycle %v",
					seed, a.Giver, a.Receiver, cycle)
			}
		}
	}
}

func TestGenerate_PropagatesNormalizeError(t *testing.T) {
	_, _, err := Generate(Roster{Participants: []string{"Alice", "Bob"}}, 1)
	if !errors.Is(err, errors.ErrCodeInsufficientParticipants) {
		t.Errorf("Generate() error = %v, want INSUFFICIENT_PARTICIPANTS", err)
	}
}
