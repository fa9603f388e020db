package shared

import "encoding/json"

// Client actions.
const (
	ActionJoinRoom  = "join_room"
	ActionAddBot    = "add_bot"
	ActionStartGame = "start_game"
	ActionPlaceBid  = "place_bid"
	ActionPlayCard  = "play_card"
	ActionNextRound = "next_round"
	ActionLeave     = "leave_room"
	ActionSignal    = "signal"
)

// Server actions.
const (
	ActionStateUpdate = "game_state_update"
	ActionError       = "error"
	ActionWelcome     = "welcome"
)

// Message is the frame exchanged over the websocket in both directions.
type Message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Command is the payload of every client action. Fields irrelevant to an
// action are ignored.
type Command struct {
	RoomCode  string          `json:"roomCode,omitempty"`
	PlayerID  string          `json:"playerId,omitempty"`
	Name      string          `json:"name,omitempty"`
	Bid       *int            `json:"bid,omitempty"`
	CardIndex *int            `json:"cardIndex,omitempty"`
	TargetID  string          `json:"targetId,omitempty"`
	Signal    json.RawMessage `json:"signal,omitempty"`
}

// ErrorData is sent to the issuer of a rejected command only.
type ErrorData struct {
	Message string `json:"message"`
}

// SignalData is relayed verbatim to the target of a signal action.
type SignalData struct {
	From   string          `json:"from"`
	Signal json.RawMessage `json:"signal"`
}

type WelcomeData struct {
	PlayerID string `json:"playerId"`
	RoomCode string `json:"roomCode"`
}
