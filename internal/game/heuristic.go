package game

import "math/rand"

// ChooseBid picks a conservative bid for the bot in seat idx. A bid the dealer
// may not make is swapped for the other of 0 and 1.
func ChooseBid(s *GameState, idx int, rng *rand.Rand) int {
	cards := s.CurrentRound.CardsCount
	bid := int(rng.Float64() * (float64(cards)/2 + 1))
	if bid > cards {
		bid = cards
	}
	if idx == s.DealerIndex && s.BidTotal()+bid == cards {
		if bid == 0 {
			bid = 1
		} else {
			bid = 0
		}
	}
	return bid
}

// ChooseCard picks uniformly among the legal cards of the bot in seat idx.
func ChooseCard(s *GameState, idx int, rng *rand.Rand) (int, bool) {
	legal := LegalCardIndices(s.Players[idx].Hand, s.CurrentTrick.LeadSuit)
	if len(legal) == 0 {
		return -1, false
	}
	return legal[rng.Intn(len(legal))], true
}
