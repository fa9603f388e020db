package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var ErrDeckExhausted = errors.New("not enough cards in deck")

// Deck is a standard 52-card deck consumed from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset rebuilds the full ordered deck.
func (d *Deck) Reset() {
	d.cards = make([]Card, 0, len(Suits)*(MaxRank-MinRank+1))
	for _, s := range Suits {
		for r := MinRank; r <= MaxRank; r++ {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}
}

// Shuffle permutes the remaining cards uniformly (Fisher-Yates).
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Len() int { return len(d.cards) }

// Deal removes and returns the first n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: deal %d of %d", ErrDeckExhausted, n, len(d.cards))
	}
	out := append([]Card{}, d.cards[:n]...)
	d.cards = d.cards[n:]
	return out, nil
}

// DrawOne removes the next card; ok is false when the deck is empty.
func (d *Deck) DrawOne() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Weight ranks a card within a trick: trump 100+rank, lead 50+rank, else rank.
func Weight(c Card, lead Suit, trump *Suit) int {
	if trump != nil && c.Suit == *trump {
		return 100 + c.Rank
	}
	if c.Suit == lead {
		return 50 + c.Rank
	}
	return c.Rank
}

// Compare is negative when a ranks below b, zero when equal, positive above.
func Compare(a, b Card, lead Suit, trump *Suit) int {
	return Weight(a, lead, trump) - Weight(b, lead, trump)
}

// SortHand orders a hand for display, spades last.
func SortHand(hand []Card) {
	sort.SliceStable(hand, func(i, j int) bool {
		return Compare(hand[i], hand[j], SuitSpades, nil) < 0
	})
}
