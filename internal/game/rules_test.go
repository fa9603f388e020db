package game

import (
	"errors"
	"math/rand"
	"testing"
)

func suitPtr(s Suit) *Suit { return &s }

func biddingState(n, cards, dealer int) *GameState {
	s := &GameState{Phase: PhaseBidding, DealerIndex: dealer, CurrentRound: RoundConfig{CardsCount: cards}}
	for i := 0; i < n; i++ {
		s.Players = append(s.Players, Player{ID: string(rune('a' + i)), Bid: NoBid})
	}
	return s
}

func TestDealerHookForbidsExactlyOneBid(t *testing.T) {
	for cards := 1; cards <= 13; cards++ {
		for others := 0; others <= 3*cards; others++ {
			s := biddingState(4, cards, 3)
			// spread the prior total over seats 0..2
			rem := others
			for i := 0; i < 3; i++ {
				b := rem
				if b > cards {
					b = cards
				}
				s.Players[i].Bid = b
				rem -= b
			}
			if rem != 0 {
				continue
			}
			s.CurrentTurnIndex = 3

			rejected := 0
			for bid := 0; bid <= cards; bid++ {
				err := ValidateBid(s, 3, bid)
				if errors.Is(err, ErrDealerHook) {
					rejected++
					if others+bid != cards {
						t.Fatalf("cards=%d others=%d: bid %d rejected wrongly", cards, others, bid)
					}
				} else if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
			}
			forbidden, ok := ForbiddenDealerBid(s)
			want := 0
			if others <= cards {
				want = 1
			}
			if rejected != want {
				t.Fatalf("cards=%d others=%d: %d bids rejected, want %d", cards, others, rejected, want)
			}
			if ok != (want == 1) || (ok && forbidden != cards-others) {
				t.Fatalf("cards=%d others=%d: ForbiddenDealerBid = %d,%v", cards, others, forbidden, ok)
			}
		}
	}
}

func TestValidateBidRejections(t *testing.T) {
	s := biddingState(3, 2, 2)
	s.CurrentTurnIndex = 0

	cases := []struct {
		name string
		mut  func(*GameState)
		idx  int
		bid  int
		want error
	}{
		{"wrong phase", func(s *GameState) { s.Phase = PhasePlaying }, 0, 1, ErrWrongPhase},
		{"not your turn", nil, 1, 1, ErrNotYourTurn},
		{"unknown seat", nil, -1, 1, ErrNotYourTurn},
		{"negative", nil, 0, -1, ErrInvalidBid},
		{"too many", nil, 0, 3, ErrInvalidBid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := s.Clone()
			if tc.mut != nil {
				tc.mut(&st)
			}
			if err := ValidateBid(&st, tc.idx, tc.bid); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCanPlayFollowSuit(t *testing.T) {
	hand := []Card{{SuitHearts, 4}, {SuitClubs, 9}, {SuitSpades, 12}}
	if !CanPlay(hand, hand[1], nil) {
		t.Fatalf("any card may lead")
	}
	if !CanPlay(hand, hand[0], suitPtr(SuitHearts)) {
		t.Fatalf("matching suit must be playable")
	}
	if CanPlay(hand, hand[1], suitPtr(SuitHearts)) {
		t.Fatalf("off-suit must be refused while holding the lead suit")
	}
	if !CanPlay(hand, hand[1], suitPtr(SuitDiamonds)) {
		t.Fatalf("off-suit allowed when void in the lead suit")
	}
	got := LegalCardIndices(hand, suitPtr(SuitHearts))
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("legal indices = %v", got)
	}
	if got := LegalCardIndices(hand, suitPtr(SuitDiamonds)); len(got) != 3 {
		t.Fatalf("void player should have every card legal, got %v", got)
	}
}

func TestResolveTrickTrumpBeatsLead(t *testing.T) {
	cards := []PlayedCard{
		{PlayerID: "p0", Card: Card{SuitHearts, 10}},
		{PlayerID: "p1", Card: Card{SuitSpades, 2}},
		{PlayerID: "p2", Card: Card{SuitHearts, 14}},
		{PlayerID: "p3", Card: Card{SuitClubs, 5}},
	}
	if w := ResolveTrick(cards, SuitHearts, suitPtr(SuitSpades)); cards[w].PlayerID != "p1" {
		t.Fatalf("expected trump holder to win, got %s", cards[w].PlayerID)
	}
	if w := ResolveTrick(cards, SuitHearts, nil); cards[w].PlayerID != "p2" {
		t.Fatalf("expected highest heart without trump, got %s", cards[w].PlayerID)
	}
	if ResolveTrick(nil, SuitHearts, nil) != -1 {
		t.Fatalf("empty trick has no winner")
	}
}

func TestResolveTrickOrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 500; iter++ {
		d := NewDeck(rng)
		d.Shuffle()
		n := 1 + rng.Intn(8)
		hand, _ := d.Deal(n)
		trump := Suits[rng.Intn(4)]
		lead := hand[0].Suit

		cards := make([]PlayedCard, n)
		for i, c := range hand {
			cards[i] = PlayedCard{PlayerID: c.String(), Card: c}
		}
		want := cards[ResolveTrick(cards, lead, &trump)].Card

		rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
		got := cards[ResolveTrick(cards, lead, &trump)].Card
		if got != want {
			t.Fatalf("winner depends on order: %s vs %s", got, want)
		}
		for _, c := range cards {
			if Weight(c.Card, lead, &trump) > Weight(got, lead, &trump) {
				t.Fatalf("%s outweighs winner %s", c.Card, got)
			}
		}
	}
}

func TestScoreDelta(t *testing.T) {
	if got := ScoreDelta(2, 2); got != 14 {
		t.Fatalf("exact bid 2: got %d", got)
	}
	if got := ScoreDelta(2, 0); got != -4 {
		t.Fatalf("bid 2 won 0: got %d", got)
	}
	if got := ScoreDelta(0, 0); got != 10 {
		t.Fatalf("exact zero: got %d", got)
	}
	for bid := 1; bid <= 13; bid++ {
		if ScoreDelta(bid, bid) <= ScoreDelta(bid-1, bid-1) {
			t.Fatalf("exact bonus must grow with bid at %d", bid)
		}
	}
	for miss := 2; miss <= 13; miss++ {
		if ScoreDelta(0, miss) >= ScoreDelta(0, miss-1) {
			t.Fatalf("penalty must grow with miss at %d", miss)
		}
	}
}

func TestChooseBidRespectsHook(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for cards := 1; cards <= 13; cards++ {
		for others := 0; others <= cards; others++ {
			s := biddingState(2, cards, 1)
			s.Players[0].Bid = others
			s.CurrentTurnIndex = 1
			for i := 0; i < 20; i++ {
				bid := ChooseBid(s, 1, rng)
				if err := ValidateBid(s, 1, bid); err != nil {
					t.Fatalf("cards=%d others=%d: bot bid %d rejected: %v", cards, others, bid, err)
				}
			}
		}
	}
}

func TestChooseCardIsLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := &GameState{
		Players:      []Player{{Hand: []Card{{SuitHearts, 3}, {SuitClubs, 4}, {SuitHearts, 9}}}},
		CurrentTrick: Trick{LeadSuit: suitPtr(SuitHearts)},
	}
	for i := 0; i < 50; i++ {
		idx, ok := ChooseCard(s, 0, rng)
		if !ok || s.Players[0].Hand[idx].Suit != SuitHearts {
			t.Fatalf("bot must follow suit, picked %d", idx)
		}
	}
	s.Players[0].Hand = nil
	if _, ok := ChooseCard(s, 0, rng); ok {
		t.Fatalf("empty hand has no legal card")
	}
}

func TestRedactedForKeepsOwnHand(t *testing.T) {
	s := GameState{Players: []Player{
		{ID: "a", Hand: []Card{{SuitHearts, 2}}},
		{ID: "b", Hand: []Card{{SuitClubs, 5}, {SuitClubs, 6}}},
	}}
	r := s.RedactedFor("a")
	if r.Players[0].Hand[0] != (Card{SuitHearts, 2}) {
		t.Fatalf("viewer hand must stay visible")
	}
	if len(r.Players[1].Hand) != 2 || r.Players[1].Hand[0] != (Card{}) {
		t.Fatalf("other hand must be hidden but sized, got %v", r.Players[1].Hand)
	}
	if s.Players[1].Hand[0] != (Card{SuitClubs, 5}) {
		t.Fatalf("redaction mutated the source state")
	}
}
