package ws

import "judgement/internal/room"

// RoomManager is the part of room.Manager the hub depends on.
type RoomManager interface {
	GetOrCreate(code string) (*room.Room, bool)
	Get(code string) (*room.Room, bool)
	Remove(code string)
	BotName() string
}
