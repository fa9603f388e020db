package game

import (
	"fmt"
	"time"
)

type Suit string

const (
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
	SuitSpades   Suit = "S"
)

// Suits lists the four suits in deck-building order.
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

const (
	MinRank = 2
	MaxRank = 14 // ace
)

// Card is an immutable playing card. Ranks 11..14 are J, Q, K, A.
type Card struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"`
}

func (c Card) String() string {
	switch c.Rank {
	case 11:
		return "J" + string(c.Suit)
	case 12:
		return "Q" + string(c.Suit)
	case 13:
		return "K" + string(c.Suit)
	case 14:
		return "A" + string(c.Suit)
	default:
		return fmt.Sprintf("%d%s", c.Rank, c.Suit)
	}
}

// Phase represents the lifecycle stage of a room.
type Phase string

const (
	PhaseLobby    Phase = "LOBBY"
	PhaseDealing  Phase = "DEALING"
	PhaseBidding  Phase = "BIDDING"
	PhasePlaying  Phase = "PLAYING"
	PhaseScoring  Phase = "SCORING"
	PhaseGameOver Phase = "GAME_OVER"
)

// NoBid marks a player who has not bid in the current round.
const NoBid = -1

type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsHost      bool   `json:"isHost"`
	IsBot       bool   `json:"isBot"`
	IsConnected bool   `json:"isConnected"`
	Score       int    `json:"score"`
	Hand        []Card `json:"hand"`
	Bid         int    `json:"bid"`
	TricksWon   int    `json:"tricksWon"`
}

type RoundConfig struct {
	RoundNumber int `json:"roundNumber"`
	CardsCount  int `json:"cardsCount"`
	TotalRounds int `json:"totalRounds"`
}

type Trump struct {
	Suit         *Suit `json:"suit"`
	RevealedCard *Card `json:"revealedCard"`
}

type PlayedCard struct {
	PlayerID string `json:"playerId"`
	Card     Card   `json:"card"`
}

type Trick struct {
	LeadSuit *Suit       `json:"leadSuit"`
	Cards    []PlayedCard `json:"cards"`
	WinnerID *string     `json:"winnerId"`
}

// Mode is the hand-size progression. Only the ladder is implemented.
type Mode string

const ModeLadder Mode = "LADDER"

type Settings struct {
	MaxPlayers int  `json:"maxPlayers"`
	Mode       Mode `json:"mode"`
	// TargetScore ends the game once any player reaches it; 0 plays every round.
	TargetScore int `json:"targetScore"`
}

// DefaultSettings mirrors a fresh room: eight seats, ladder, 100 points.
func DefaultSettings() Settings {
	return Settings{MaxPlayers: 8, Mode: ModeLadder, TargetScore: 100}
}

type LogType string

const (
	LogInfo  LogType = "info"
	LogChat  LogType = "chat"
	LogError LogType = "error"
)

type LogEntry struct {
	Message   string    `json:"message"`
	Type      LogType   `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// MaxLogEntries bounds GameState.Logs.
const MaxLogEntries = 50

// GameState is the room's single source of truth. Seat order is turn order.
type GameState struct {
	RoomCode         string      `json:"roomCode"`
	Players          []Player    `json:"players"`
	Settings         Settings    `json:"settings"`
	Phase            Phase       `json:"phase"`
	CurrentRound     RoundConfig `json:"currentRound"`
	Trump            Trump       `json:"trump"`
	DealerIndex      int         `json:"dealerIndex"`
	CurrentTurnIndex int         `json:"currentTurnIndex"`
	CurrentTrick     Trick       `json:"currentTrick"`
	Logs             []LogEntry  `json:"logs"`
}

// Clone returns a deep copy that shares no slices or pointers with s.
func (s GameState) Clone() GameState {
	out := s
	out.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.Hand = append([]Card{}, p.Hand...)
		out.Players[i] = p
	}
	out.Trump = Trump{}
	if s.Trump.Suit != nil {
		suit := *s.Trump.Suit
		out.Trump.Suit = &suit
	}
	if s.Trump.RevealedCard != nil {
		card := *s.Trump.RevealedCard
		out.Trump.RevealedCard = &card
	}
	out.CurrentTrick = Trick{Cards: append([]PlayedCard{}, s.CurrentTrick.Cards...)}
	if s.CurrentTrick.LeadSuit != nil {
		suit := *s.CurrentTrick.LeadSuit
		out.CurrentTrick.LeadSuit = &suit
	}
	if s.CurrentTrick.WinnerID != nil {
		id := *s.CurrentTrick.WinnerID
		out.CurrentTrick.WinnerID = &id
	}
	out.Logs = append([]LogEntry{}, s.Logs...)
	return out
}

// RedactedFor hides every hand except the viewer's. Hand sizes are kept so a
// client can still render card backs.
func (s GameState) RedactedFor(viewerID string) GameState {
	out := s.Clone()
	for i := range out.Players {
		if out.Players[i].ID == viewerID {
			continue
		}
		out.Players[i].Hand = make([]Card, len(out.Players[i].Hand))
	}
	return out
}

// PlayerIndex returns the seat of id, or -1.
func (s *GameState) PlayerIndex(id string) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *GameState) host() *Player {
	for i := range s.Players {
		if s.Players[i].IsHost {
			return &s.Players[i]
		}
	}
	return nil
}

// BidTotal sums the bids already placed this round.
func (s *GameState) BidTotal() int {
	sum := 0
	for _, p := range s.Players {
		if p.Bid >= 0 {
			sum += p.Bid
		}
	}
	return sum
}

func (s *GameState) nextSeat(i int) int {
	return (i + 1) % len(s.Players)
}
