package room

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"judgement/internal/shared"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrMissingField  = errors.New("missing field")
)

// Execute applies a wire command issued by playerID. Join and leave are
// included so HTTP clients can drive a room without a websocket.
func (r *Room) Execute(ctx context.Context, action, playerID string, cmd shared.Command, botName string) error {
	switch action {
	case shared.ActionJoinRoom:
		name := strings.TrimSpace(cmd.Name)
		if name == "" {
			name = "Player"
		}
		return r.Join(ctx, playerID, name)
	case shared.ActionAddBot:
		name := strings.TrimSpace(cmd.Name)
		if name == "" {
			name = botName
		}
		_, err := r.AddBot(ctx, playerID, name)
		return err
	case shared.ActionStartGame:
		return r.Start(ctx, playerID)
	case shared.ActionPlaceBid:
		if cmd.Bid == nil {
			return fmt.Errorf("%w: bid", ErrMissingField)
		}
		return r.PlaceBid(ctx, playerID, *cmd.Bid)
	case shared.ActionPlayCard:
		if cmd.CardIndex == nil {
			return fmt.Errorf("%w: cardIndex", ErrMissingField)
		}
		return r.PlayCard(ctx, playerID, *cmd.CardIndex)
	case shared.ActionNextRound:
		return r.NextRound(ctx, playerID)
	case shared.ActionLeave:
		_, err := r.Leave(ctx, playerID)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
