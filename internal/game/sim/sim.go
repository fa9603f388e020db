// Package sim drives whole games with the bot policy and checks the engine's
// invariants after every published state.
package sim

import (
	"fmt"
	"math/rand"

	"judgement/internal/game"
)

const hostID = "host"

type checker struct {
	prev   *game.GameState
	failed error
}

func (c *checker) StateChanged(s game.GameState) {
	if c.failed != nil {
		return
	}
	if err := checkInvariants(s, c.prev); err != nil {
		c.failed = err
	}
	c.prev = &s
}

// RunSelfPlay plays one complete game for the given seat count. Every seat
// except the host is a bot; the host plays with the same policy.
func RunSelfPlay(seed int64, players int, targetScore int, maxSteps int) error {
	chk := &checker{}
	settings := game.DefaultSettings()
	settings.TargetScore = targetScore
	rng := rand.New(rand.NewSource(seed))
	e := game.NewEngine("SIM", settings, rng, chk, nil)

	if err := e.Join(hostID, "Host"); err != nil {
		return err
	}
	for i := 1; i < players; i++ {
		if _, err := e.AddBot(hostID, fmt.Sprintf("Bot %d", i)); err != nil {
			return err
		}
	}
	if err := e.StartGame(hostID); err != nil {
		return err
	}

	hostRng := rand.New(rand.NewSource(seed + 1))
	for step := 0; step < maxSteps; step++ {
		if chk.failed != nil {
			return fmt.Errorf("seed %d step %d: %w", seed, step, chk.failed)
		}
		s := e.Snapshot()
		switch s.Phase {
		case game.PhaseGameOver:
			return nil
		case game.PhaseScoring:
			if err := e.NextRound(hostID); err != nil {
				return fmt.Errorf("seed %d step %d: next round: %w", seed, step, err)
			}
			continue
		}

		if turn, ok := e.PendingBotTurn(); ok {
			if err := e.PlayBotTurn(turn); err != nil {
				return fmt.Errorf("seed %d step %d: bot %s: %w", seed, step, turn.PlayerID, err)
			}
			continue
		}

		seat := s.CurrentTurnIndex
		var err error
		switch s.Phase {
		case game.PhaseBidding:
			err = e.PlaceBid(hostID, game.ChooseBid(&s, seat, hostRng))
		case game.PhasePlaying:
			idx, ok := game.ChooseCard(&s, seat, hostRng)
			if !ok {
				return fmt.Errorf("seed %d step %d: host has no legal card", seed, step)
			}
			err = e.PlayCard(hostID, idx)
		default:
			err = fmt.Errorf("unexpected phase %s", s.Phase)
		}
		if err != nil {
			return fmt.Errorf("seed %d step %d: host: %w", seed, step, err)
		}
	}
	return fmt.Errorf("seed %d: game did not finish in %d steps", seed, maxSteps)
}

func checkInvariants(s game.GameState, prev *game.GameState) error {
	n := len(s.Players)
	if n == 0 {
		return nil
	}
	if s.DealerIndex < 0 || s.DealerIndex >= n || s.CurrentTurnIndex < 0 || s.CurrentTurnIndex >= n {
		return fmt.Errorf("index out of range: dealer %d turn %d", s.DealerIndex, s.CurrentTurnIndex)
	}

	if s.Phase == game.PhaseBidding || s.Phase == game.PhasePlaying {
		cards := s.CurrentRound.CardsCount
		held, won := 0, 0
		seen := map[game.Card]bool{}
		for _, p := range s.Players {
			held += len(p.Hand)
			won += p.TricksWon
			for _, c := range p.Hand {
				if seen[c] {
					return fmt.Errorf("card %s held twice", c)
				}
				seen[c] = true
			}
		}
		if held+len(s.CurrentTrick.Cards)+won*n != cards*n {
			return fmt.Errorf("card count drifted: held %d trick %d won %d of %dx%d",
				held, len(s.CurrentTrick.Cards), won, cards, n)
		}
		if len(s.CurrentTrick.Cards) >= n {
			return fmt.Errorf("trick holds %d cards for %d players", len(s.CurrentTrick.Cards), n)
		}
	}

	if prev != nil && prev.Phase == game.PhaseBidding && s.Phase == game.PhasePlaying {
		if total := s.BidTotal(); total == s.CurrentRound.CardsCount {
			return fmt.Errorf("dealer hook broken: bids total %d", total)
		}
	}

	if prev != nil && prev.Phase != game.PhaseLobby && prev.Phase != game.PhaseGameOver &&
		s.Phase != game.PhaseScoring && s.Phase != game.PhaseGameOver {
		for i, p := range s.Players {
			if i < len(prev.Players) && prev.Players[i].Score != p.Score {
				return fmt.Errorf("score of %s changed outside scoring", p.ID)
			}
		}
	}
	return nil
}
