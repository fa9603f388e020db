package game

// ScoreDelta is the round result for a player: an exact bid earns 10+2*bid,
// a miss costs twice the distance.
func ScoreDelta(bid, tricksWon int) int {
	diff := tricksWon - bid
	if diff < 0 {
		diff = -diff
	}
	if diff == 0 {
		return 10 + 2*bid
	}
	return -2 * diff
}

// targetReached reports whether any player reached the settings' target.
func targetReached(s *GameState) bool {
	if s.Settings.TargetScore <= 0 {
		return false
	}
	for _, p := range s.Players {
		if p.Score >= s.Settings.TargetScore {
			return true
		}
	}
	return false
}

// Leaders returns the ids of the players sharing the top score.
func Leaders(s *GameState) []string {
	var ids []string
	best := 0
	for i, p := range s.Players {
		switch {
		case i == 0 || p.Score > best:
			best = p.Score
			ids = []string{p.ID}
		case p.Score == best:
			ids = append(ids, p.ID)
		}
	}
	return ids
}
