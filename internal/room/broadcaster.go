package room

import "judgement/internal/shared"

// Broadcaster fans a message out to every connection of a room.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

// ActionStateUpdate carries a game.GameState snapshot.
const ActionStateUpdate = shared.ActionStateUpdate
