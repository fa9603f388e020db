package http

import (
	"time"

	"judgement/internal/game"
	"judgement/internal/shared"
)

// ActionRequest drives a room over HTTP. PlayerID may be empty for
// join_room, in which case a new id is issued.
type ActionRequest struct {
	Action    string `json:"action" binding:"required" example:"place_bid"`
	PlayerID  string `json:"playerId" example:"3f1c..."`
	Name      string `json:"name,omitempty" example:"Alice"`
	Bid       *int   `json:"bid,omitempty" example:"1"`
	CardIndex *int   `json:"cardIndex,omitempty" example:"0"`
}

func (r ActionRequest) command() shared.Command {
	return shared.Command{
		PlayerID:  r.PlayerID,
		Name:      r.Name,
		Bid:       r.Bid,
		CardIndex: r.CardIndex,
	}
}

// ActionResponse returns the issuer's id and the state after the command.
type ActionResponse struct {
	PlayerID string         `json:"playerId"`
	State    game.GameState `json:"state"`
}

type CreateRoomResponse struct {
	RoomCode string `json:"roomCode" example:"K7QX2M"`
}

// RoomSummary is one row of the room listing.
type RoomSummary struct {
	Code      string     `json:"code"`
	Phase     game.Phase `json:"phase"`
	Players   int        `json:"players"`
	Round     int        `json:"round"`
	CreatedAt time.Time  `json:"createdAt"`
}

type DefaultsResponse struct {
	Settings    game.Settings `json:"settings"`
	BotDelayMS  int64         `json:"botDelayMs"`
	BotName     string        `json:"botName"`
	RedactHands bool          `json:"redactHands"`
	Schedule    map[int][]int `json:"schedule"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
