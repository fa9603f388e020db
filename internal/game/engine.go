package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Observer receives a snapshot after every accepted mutation. It runs inside
// the command that caused the change and must not call back into the Engine.
type Observer interface {
	StateChanged(state GameState)
}

// BotTurn identifies a move owed by a bot. It goes stale as soon as the turn
// or phase moves on.
type BotTurn struct {
	PlayerID string
	Seat     int
	Phase    Phase
}

// Engine owns one room's GameState. It is not safe for concurrent use; callers
// serialize commands (see internal/room).
type Engine struct {
	state    GameState
	schedule []int
	roundIdx int
	deck     *Deck
	rng      *rand.Rand
	observer Observer
	logger   *zap.Logger
	now      func() time.Time
}

// NewEngine builds an engine for an empty room. A nil rng is seeded from the
// clock; nil observer and logger are allowed.
func NewEngine(roomCode string, settings Settings, rng *rand.Rand, observer Observer, logger *zap.Logger) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.Mode == "" {
		settings.Mode = ModeLadder
	}
	return &Engine{
		state: GameState{
			RoomCode:         roomCode,
			Players:          []Player{},
			Settings:         settings,
			Phase:            PhaseLobby,
			DealerIndex:      -1,
			CurrentTurnIndex: -1,
			Logs:             []LogEntry{},
		},
		deck:     NewDeck(rng),
		rng:      rng,
		observer: observer,
		logger:   logger.With(zap.String("room", roomCode)),
		now:      time.Now,
	}
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() GameState {
	return e.state.Clone()
}

func (e *Engine) Join(playerID, name string) error {
	s := &e.state
	if s.Phase != PhaseLobby && s.Phase != PhaseGameOver {
		return fmt.Errorf("%w: game in progress", ErrWrongPhase)
	}
	if len(s.Players) >= s.Settings.MaxPlayers {
		return ErrRoomFull
	}
	if s.PlayerIndex(playerID) >= 0 {
		return ErrAlreadySeated
	}
	s.Players = append(s.Players, Player{
		ID:          playerID,
		Name:        name,
		IsHost:      s.host() == nil,
		IsConnected: true,
		Hand:        []Card{},
		Bid:         NoBid,
	})
	e.log("%s joined the table.", name)
	e.logger.Debug("player joined", zap.String("player", playerID))
	e.notify()
	return nil
}

// AddBot seats a computer player and returns its id.
func (e *Engine) AddBot(issuerID, name string) (string, error) {
	s := &e.state
	if err := e.requireHost(issuerID); err != nil {
		return "", err
	}
	if s.Phase != PhaseLobby {
		return "", fmt.Errorf("%w: bots join in the lobby only", ErrWrongPhase)
	}
	if len(s.Players) >= s.Settings.MaxPlayers {
		return "", ErrRoomFull
	}
	id := "bot-" + uuid.NewString()
	s.Players = append(s.Players, Player{
		ID:          id,
		Name:        name + " (Bot)",
		IsBot:       true,
		IsConnected: true,
		Hand:        []Card{},
		Bid:         NoBid,
	})
	e.log("%s (Bot) joined the table.", name)
	e.notify()
	return id, nil
}

// StartGame fixes the round schedule, picks a random dealer and deals round 1.
func (e *Engine) StartGame(issuerID string) error {
	s := &e.state
	if err := e.requireHost(issuerID); err != nil {
		return err
	}
	if s.Phase != PhaseLobby && s.Phase != PhaseGameOver {
		return fmt.Errorf("%w: game already running", ErrWrongPhase)
	}
	if s.Phase == PhaseGameOver {
		e.pruneDisconnected()
	}
	if len(s.Players) < 1 {
		return ErrNoPlayers
	}

	e.schedule = RoundSchedule(len(s.Players))
	e.roundIdx = 0
	s.DealerIndex = e.rng.Intn(len(s.Players))
	for i := range s.Players {
		s.Players[i].Score = 0
	}
	if err := e.startRound(); err != nil {
		return err
	}
	e.logger.Info("game started",
		zap.Int("players", len(s.Players)),
		zap.Int("rounds", len(e.schedule)),
	)
	e.notify()
	return nil
}

func (e *Engine) PlaceBid(playerID string, bid int) error {
	s := &e.state
	idx := s.PlayerIndex(playerID)
	if err := ValidateBid(s, idx, bid); err != nil {
		return err
	}

	p := &s.Players[idx]
	p.Bid = bid
	e.log("%s calls %d", p.Name, bid)

	allBid := true
	for _, pl := range s.Players {
		if pl.Bid < 0 {
			allBid = false
			break
		}
	}
	if allBid {
		s.Phase = PhasePlaying
		s.CurrentTurnIndex = s.nextSeat(s.DealerIndex)
		s.CurrentTrick = Trick{Cards: []PlayedCard{}}
		e.log("Bidding done. %s leads.", s.Players[s.CurrentTurnIndex].Name)
	} else {
		s.CurrentTurnIndex = s.nextSeat(s.CurrentTurnIndex)
	}
	e.notify()
	return nil
}

func (e *Engine) PlayCard(playerID string, cardIdx int) error {
	s := &e.state
	if s.Phase != PhasePlaying {
		return fmt.Errorf("%w: not playing phase", ErrWrongPhase)
	}
	idx := s.PlayerIndex(playerID)
	if idx < 0 || idx != s.CurrentTurnIndex {
		return ErrNotYourTurn
	}
	p := &s.Players[idx]
	if cardIdx < 0 || cardIdx >= len(p.Hand) {
		return fmt.Errorf("%w: index %d", ErrInvalidCard, cardIdx)
	}
	card := p.Hand[cardIdx]
	lead := s.CurrentTrick.LeadSuit
	if !CanPlay(p.Hand, card, lead) {
		return fmt.Errorf("%w: %s", ErrMustFollowSuit, *lead)
	}

	if lead == nil {
		suit := card.Suit
		s.CurrentTrick.LeadSuit = &suit
	}
	p.Hand = append(p.Hand[:cardIdx:cardIdx], p.Hand[cardIdx+1:]...)
	s.CurrentTrick.Cards = append(s.CurrentTrick.Cards, PlayedCard{PlayerID: playerID, Card: card})

	if len(s.CurrentTrick.Cards) == len(s.Players) {
		e.resolveTrick()
	} else {
		s.CurrentTurnIndex = s.nextSeat(s.CurrentTurnIndex)
	}
	e.notify()
	return nil
}

// NextRound deals the next round after scoring.
func (e *Engine) NextRound(issuerID string) error {
	s := &e.state
	if err := e.requireHost(issuerID); err != nil {
		return err
	}
	if s.Phase != PhaseScoring {
		return fmt.Errorf("%w: round not scored", ErrWrongPhase)
	}
	e.roundIdx++
	if err := e.startRound(); err != nil {
		return err
	}
	e.notify()
	return nil
}

// Leave removes the seat in the lobby. Once a game has started the seat is
// kept, because dealer and turn arithmetic depend on seat indices.
func (e *Engine) Leave(playerID string) error {
	s := &e.state
	idx := s.PlayerIndex(playerID)
	if idx < 0 {
		return ErrUnknownPlayer
	}
	p := s.Players[idx]

	if s.Phase == PhaseLobby {
		s.Players = append(s.Players[:idx:idx], s.Players[idx+1:]...)
		if len(s.Players) > 0 && s.host() == nil {
			s.Players[0].IsHost = true
		}
		e.log("%s left the table.", p.Name)
	} else {
		s.Players[idx].IsConnected = false
		if p.IsHost {
			e.handOverHost(idx)
		}
		e.log("%s disconnected! waiting...", p.Name)
	}
	e.logger.Debug("player left", zap.String("player", playerID), zap.String("phase", string(s.Phase)))
	e.notify()
	return nil
}

// PendingBotTurn reports the bot move owed at the current seat, if any.
func (e *Engine) PendingBotTurn() (BotTurn, bool) {
	s := &e.state
	if s.Phase != PhaseBidding && s.Phase != PhasePlaying {
		return BotTurn{}, false
	}
	if s.CurrentTurnIndex < 0 || s.CurrentTurnIndex >= len(s.Players) {
		return BotTurn{}, false
	}
	p := s.Players[s.CurrentTurnIndex]
	if !p.IsBot {
		return BotTurn{}, false
	}
	return BotTurn{PlayerID: p.ID, Seat: s.CurrentTurnIndex, Phase: s.Phase}, true
}

// PlayBotTurn applies the bot's chosen move if t is still current.
func (e *Engine) PlayBotTurn(t BotTurn) error {
	s := &e.state
	if s.Phase != t.Phase || s.CurrentTurnIndex != t.Seat ||
		t.Seat < 0 || t.Seat >= len(s.Players) || s.Players[t.Seat].ID != t.PlayerID {
		return ErrStaleBotTurn
	}
	switch t.Phase {
	case PhaseBidding:
		return e.PlaceBid(t.PlayerID, ChooseBid(s, t.Seat, e.rng))
	case PhasePlaying:
		idx, ok := ChooseCard(s, t.Seat, e.rng)
		if !ok {
			return fmt.Errorf("%w: bot %s has no legal card", ErrInvariant, t.PlayerID)
		}
		return e.PlayCard(t.PlayerID, idx)
	default:
		return ErrStaleBotTurn
	}
}

func (e *Engine) startRound() error {
	s := &e.state
	n := len(s.Players)
	cards := e.schedule[e.roundIdx]
	s.CurrentRound = RoundConfig{
		RoundNumber: e.roundIdx + 1,
		CardsCount:  cards,
		TotalRounds: len(e.schedule),
	}

	s.Phase = PhaseDealing
	e.deck.Reset()
	e.deck.Shuffle()
	for i := range s.Players {
		hand, err := e.deck.Deal(cards)
		if err != nil {
			e.logger.Error("deal failed", zap.Int("round", s.CurrentRound.RoundNumber), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrInvariant, err)
		}
		SortHand(hand)
		s.Players[i].Hand = hand
		s.Players[i].Bid = NoBid
		s.Players[i].TricksWon = 0
	}

	if revealed, ok := e.deck.DrawOne(); ok {
		suit := revealed.Suit
		s.Trump = Trump{Suit: &suit, RevealedCard: &revealed}
		e.log("Trump is %s (revealed %s)", suit, revealed)
	} else {
		s.Trump = Trump{}
		e.log("No trump this round!")
	}

	s.Phase = PhaseBidding
	s.DealerIndex = (s.DealerIndex + 1) % n
	s.CurrentTurnIndex = (s.DealerIndex + 1) % n
	s.CurrentTrick = Trick{Cards: []PlayedCard{}}

	e.log("Round %d: %d cards.", s.CurrentRound.RoundNumber, cards)
	e.log("Bidding starts with %s", s.Players[s.CurrentTurnIndex].Name)
	return nil
}

func (e *Engine) resolveTrick() {
	s := &e.state
	trick := &s.CurrentTrick
	w := ResolveTrick(trick.Cards, *trick.LeadSuit, s.Trump.Suit)
	winnerID := trick.Cards[w].PlayerID
	trick.WinnerID = &winnerID

	seat := s.PlayerIndex(winnerID)
	s.Players[seat].TricksWon++
	e.log("%s takes the trick", s.Players[seat].Name)

	for _, p := range s.Players {
		if len(p.Hand) > 0 {
			s.CurrentTurnIndex = seat
			s.CurrentTrick = Trick{Cards: []PlayedCard{}}
			return
		}
	}
	e.endRound()
}

func (e *Engine) endRound() {
	s := &e.state
	s.Phase = PhaseScoring
	for i := range s.Players {
		p := &s.Players[i]
		p.Score += ScoreDelta(p.Bid, p.TricksWon)
	}
	e.log("Round finished! Scores updated.")
	e.logger.Info("round scored", zap.Int("round", s.CurrentRound.RoundNumber))

	switch {
	case targetReached(s):
		s.Phase = PhaseGameOver
		e.log("Game over! Target score reached.")
	case e.roundIdx >= len(e.schedule)-1:
		s.Phase = PhaseGameOver
		e.log("Game over! All rounds finished.")
	}
	if s.Phase == PhaseGameOver {
		e.logger.Info("game over", zap.Strings("leaders", Leaders(s)))
	}
}

func (e *Engine) requireHost(issuerID string) error {
	idx := e.state.PlayerIndex(issuerID)
	if idx < 0 {
		return ErrUnknownPlayer
	}
	if !e.state.Players[idx].IsHost {
		return ErrNotHost
	}
	return nil
}

// handOverHost moves the host flag from seat idx to the first connected human.
// The flag stays put when nobody else can take it.
func (e *Engine) handOverHost(idx int) {
	s := &e.state
	for i, p := range s.Players {
		if i != idx && p.IsConnected && !p.IsBot {
			s.Players[idx].IsHost = false
			s.Players[i].IsHost = true
			e.log("%s is now the host.", p.Name)
			return
		}
	}
}

// pruneDisconnected drops seats left empty by a finished game.
func (e *Engine) pruneDisconnected() {
	s := &e.state
	kept := s.Players[:0]
	for _, p := range s.Players {
		if p.IsConnected {
			kept = append(kept, p)
		}
	}
	s.Players = kept
	if len(s.Players) > 0 && s.host() == nil {
		s.Players[0].IsHost = true
	}
}

// ConnectedHumans counts human players still attached to the room.
func (e *Engine) ConnectedHumans() int {
	n := 0
	for _, p := range e.state.Players {
		if !p.IsBot && p.IsConnected {
			n++
		}
	}
	return n
}

func (e *Engine) PlayerCount() int { return len(e.state.Players) }

func (e *Engine) log(format string, args ...interface{}) {
	s := &e.state
	s.Logs = append(s.Logs, LogEntry{
		Message:   fmt.Sprintf(format, args...),
		Type:      LogInfo,
		Timestamp: e.now(),
	})
	if len(s.Logs) > MaxLogEntries {
		s.Logs = append([]LogEntry{}, s.Logs[len(s.Logs)-MaxLogEntries:]...)
	}
}

func (e *Engine) notify() {
	if e.observer != nil {
		e.observer.StateChanged(e.state.Clone())
	}
}
