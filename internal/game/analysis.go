package game

import "fmt"

// ValidateBid checks a bid by the player in seat idx against the current state.
func ValidateBid(s *GameState, idx, bid int) error {
	if s.Phase != PhaseBidding {
		return fmt.Errorf("%w: not bidding phase", ErrWrongPhase)
	}
	if idx < 0 || idx != s.CurrentTurnIndex {
		return ErrNotYourTurn
	}
	if bid < 0 || bid > s.CurrentRound.CardsCount {
		return fmt.Errorf("%w: %d", ErrInvalidBid, bid)
	}
	if idx == s.DealerIndex && s.BidTotal()+bid == s.CurrentRound.CardsCount {
		return ErrDealerHook
	}
	return nil
}

// ForbiddenDealerBid is the one bid the dealer may not make given the other
// bids. ok is false when no bid in range is forbidden.
func ForbiddenDealerBid(s *GameState) (bid int, ok bool) {
	others := 0
	for i, p := range s.Players {
		if i != s.DealerIndex && p.Bid >= 0 {
			others += p.Bid
		}
	}
	bid = s.CurrentRound.CardsCount - others
	return bid, bid >= 0 && bid <= s.CurrentRound.CardsCount
}

func hasSuit(hand []Card, suit Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// CanPlay reports whether card may follow the lead given the player's hand.
// A nil lead means the card opens the trick.
func CanPlay(hand []Card, card Card, lead *Suit) bool {
	if lead == nil || card.Suit == *lead {
		return true
	}
	return !hasSuit(hand, *lead)
}

// LegalCardIndices returns the indices of hand that may be played.
func LegalCardIndices(hand []Card, lead *Suit) []int {
	out := make([]int, 0, len(hand))
	for i, c := range hand {
		if CanPlay(hand, c, lead) {
			out = append(out, i)
		}
	}
	return out
}

// ResolveTrick returns the index within cards of the winning play. The first
// card is the initial best and only a strictly heavier card replaces it.
func ResolveTrick(cards []PlayedCard, lead Suit, trump *Suit) int {
	if len(cards) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(cards); i++ {
		if Weight(cards[i].Card, lead, trump) > Weight(cards[best].Card, lead, trump) {
			best = i
		}
	}
	return best
}
