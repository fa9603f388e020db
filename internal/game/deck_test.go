package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDeckResetHas52UniqueCards(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	if d.Len() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Len())
	}
	seen := map[Card]bool{}
	for d.Len() > 0 {
		c, _ := d.DrawOne()
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		if c.Rank < MinRank || c.Rank > MaxRank {
			t.Fatalf("rank out of range: %s", c)
		}
		seen[c] = true
	}
	if _, ok := d.DrawOne(); ok {
		t.Fatalf("expected empty deck")
	}
}

func TestDeckShuffleIsPermutation(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(7)))
	d.Shuffle()
	hand, err := d.Deal(52)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	seen := map[Card]bool{}
	for _, c := range hand {
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("shuffle lost cards: %d unique", len(seen))
	}
}

func TestDeckShuffleDeterministicPerSeed(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(99)))
	b := NewDeck(rand.New(rand.NewSource(99)))
	a.Shuffle()
	b.Shuffle()
	ha, _ := a.Deal(10)
	hb, _ := b.Deal(10)
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("same seed produced different order at %d: %s vs %s", i, ha[i], hb[i])
		}
	}
}

func TestDeckDealExhausted(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	if _, err := d.Deal(50); err != nil {
		t.Fatalf("deal 50: %v", err)
	}
	_, err := d.Deal(3)
	if !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("failed deal must not consume cards, have %d", d.Len())
	}
}

func TestCompareClasses(t *testing.T) {
	trump := SuitSpades
	lead := SuitHearts
	cases := []struct {
		name string
		a, b Card
	}{
		{"trump beats lead", Card{SuitSpades, 2}, Card{SuitHearts, 14}},
		{"trump by rank", Card{SuitSpades, 9}, Card{SuitSpades, 3}},
		{"lead beats off-suit", Card{SuitHearts, 2}, Card{SuitClubs, 14}},
		{"lead by rank", Card{SuitHearts, 12}, Card{SuitHearts, 11}},
		{"off-suit by rank", Card{SuitDiamonds, 10}, Card{SuitClubs, 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if Compare(tc.a, tc.b, lead, &trump) <= 0 {
				t.Fatalf("expected %s > %s", tc.a, tc.b)
			}
			if Compare(tc.b, tc.a, lead, &trump) >= 0 {
				t.Fatalf("expected %s < %s", tc.b, tc.a)
			}
		})
	}
}

func TestSortHandPutsSpadesLast(t *testing.T) {
	hand := []Card{{SuitSpades, 2}, {SuitHearts, 14}, {SuitClubs, 3}, {SuitSpades, 10}}
	SortHand(hand)
	if hand[2].Suit != SuitSpades || hand[3] != (Card{SuitSpades, 10}) {
		t.Fatalf("unexpected order: %v", hand)
	}
	if hand[0] != (Card{SuitClubs, 3}) {
		t.Fatalf("expected lowest off-suit first, got %v", hand)
	}
}

func TestRoundSchedule(t *testing.T) {
	for n := 1; n <= 8; n++ {
		rounds := RoundSchedule(n)
		max := MaxCards(n)
		if len(rounds) != 2*max-1 {
			t.Fatalf("n=%d: expected %d rounds, got %d", n, 2*max-1, len(rounds))
		}
		for i := range rounds {
			if rounds[i] != rounds[len(rounds)-1-i] {
				t.Fatalf("n=%d: schedule not symmetric: %v", n, rounds)
			}
			if i < max && rounds[i] != i+1 {
				t.Fatalf("n=%d: ascending half broken: %v", n, rounds)
			}
			if rounds[i]*n > 52 {
				t.Fatalf("n=%d: %d cards cannot be dealt", n, rounds[i])
			}
		}
		if rounds[max-1] != max {
			t.Fatalf("n=%d: peak is %d, want %d", n, rounds[max-1], max)
		}
	}
	if RoundSchedule(0) != nil {
		t.Fatalf("expected empty schedule for no players")
	}
}

func TestScheduleLeavesTrumpCardExceptFourPlayers(t *testing.T) {
	for n := 1; n <= 8; n++ {
		peak := MaxCards(n)
		left := 52 - peak*n
		if n == 4 && left != 0 {
			t.Fatalf("four players should use the whole deck at the peak")
		}
		if n != 4 && left < 1 {
			t.Fatalf("n=%d: no card left for trump at the peak", n)
		}
	}
}
