package game

import "errors"

// Rejections. A command failing with one of these leaves the state untouched.
var (
	ErrWrongPhase     = errors.New("command not allowed in this phase")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrInvalidBid     = errors.New("invalid bid amount")
	ErrDealerHook     = errors.New("dealer cannot bid this amount (total bids cannot equal cards)")
	ErrInvalidCard    = errors.New("invalid card")
	ErrMustFollowSuit = errors.New("must follow suit")
	ErrNotHost        = errors.New("only the host can do that")
	ErrRoomFull       = errors.New("room is full")
	ErrAlreadySeated  = errors.New("player already seated")
	ErrNoPlayers      = errors.New("not enough players to start")
	ErrUnknownPlayer  = errors.New("player not found")
	ErrStaleBotTurn   = errors.New("bot turn no longer current")
)

// ErrInvariant wraps failures that correct engine usage can never produce. The
// room that hits one is unusable.
var ErrInvariant = errors.New("engine invariant violated")

// IsRejection reports whether err is an ordinary command rejection.
func IsRejection(err error) bool {
	return err != nil && !errors.Is(err, ErrInvariant)
}
