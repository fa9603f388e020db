package room

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"judgement/internal/game"
)

var ErrRoomClosed = errors.New("room closed")

type command struct {
	name  string
	apply func(e *game.Engine) error
	resp  chan error
}

// Options tune a single room.
type Options struct {
	Settings game.Settings
	BotDelay time.Duration
	Rand     *rand.Rand
}

// Room owns one Engine and applies commands to it one at a time from its own
// goroutine. Bot moves are scheduled on a timer and enqueued like any other
// command.
type Room struct {
	Code      string
	CreatedAt time.Time

	engine   *game.Engine
	bc       Broadcaster
	logger   *zap.Logger
	botDelay time.Duration

	cmds      chan command
	done      chan struct{}
	closeOnce sync.Once

	// owned by the run goroutine
	botTimer *time.Timer
	botTurn  *game.BotTurn
	failure  error
}

// New starts a room. bc may be nil.
func New(code string, opts Options, bc Broadcaster, logger *zap.Logger) *Room {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Settings.MaxPlayers == 0 {
		opts.Settings = game.DefaultSettings()
	}
	r := &Room{
		Code:      code,
		CreatedAt: time.Now(),
		bc:        bc,
		logger:    logger.With(zap.String("room", code)),
		botDelay:  opts.BotDelay,
		cmds:      make(chan command),
		done:      make(chan struct{}),
	}
	r.engine = game.NewEngine(code, opts.Settings, opts.Rand, r, logger)
	go r.run()
	return r
}

// StateChanged implements game.Observer. It runs on the room goroutine.
func (r *Room) StateChanged(state game.GameState) {
	if r.bc != nil {
		r.bc.Broadcast(r.Code, ActionStateUpdate, state)
	}
}

func (r *Room) run() {
	for {
		select {
		case cmd := <-r.cmds:
			err := r.apply(cmd)
			if cmd.resp != nil {
				cmd.resp <- err
			}
		case <-r.done:
			r.stopBot()
			return
		}
	}
}

func (r *Room) apply(cmd command) error {
	if r.failure != nil {
		return r.failure
	}
	err := cmd.apply(r.engine)
	if err != nil && !game.IsRejection(err) {
		r.failure = err
		r.logger.Error("room failed", zap.String("command", cmd.name), zap.Error(err))
		r.stopBot()
		r.Close()
		return err
	}
	r.scheduleBot()
	return err
}

// scheduleBot arms the bot timer for the current seat. A timer already armed
// for the same turn is left running so read-only commands do not delay bots.
func (r *Room) scheduleBot() {
	turn, ok := r.engine.PendingBotTurn()
	if !ok {
		r.stopBot()
		return
	}
	if r.botTurn != nil && *r.botTurn == turn {
		return
	}
	r.stopBot()
	r.botTurn = &turn
	r.botTimer = time.AfterFunc(r.botDelay, func() {
		r.enqueue(command{name: "bot_turn", apply: func(e *game.Engine) error {
			if r.botTurn != nil && *r.botTurn == turn {
				r.botTurn = nil
				r.botTimer = nil
			}
			err := e.PlayBotTurn(turn)
			switch {
			case errors.Is(err, game.ErrStaleBotTurn):
				r.logger.Debug("discarding stale bot turn",
					zap.String("player", turn.PlayerID), zap.String("phase", string(turn.Phase)))
				return nil
			case game.IsRejection(err):
				r.logger.Warn("bot move rejected", zap.String("player", turn.PlayerID), zap.Error(err))
			}
			return err
		}})
	})
}

func (r *Room) stopBot() {
	if r.botTimer != nil {
		r.botTimer.Stop()
		r.botTimer = nil
	}
	r.botTurn = nil
}

func (r *Room) enqueue(cmd command) {
	select {
	case r.cmds <- cmd:
	case <-r.done:
	}
}

// do hands fn to the room goroutine and waits for its result.
func (r *Room) do(ctx context.Context, name string, fn func(e *game.Engine) error) error {
	cmd := command{name: name, apply: fn, resp: make(chan error, 1)}
	select {
	case r.cmds <- cmd:
	case <-r.done:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.resp:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Room) Join(ctx context.Context, playerID, name string) error {
	return r.do(ctx, "join", func(e *game.Engine) error { return e.Join(playerID, name) })
}

func (r *Room) AddBot(ctx context.Context, issuerID, name string) (string, error) {
	var id string
	err := r.do(ctx, "add_bot", func(e *game.Engine) error {
		var err error
		id, err = e.AddBot(issuerID, name)
		return err
	})
	return id, err
}

func (r *Room) Start(ctx context.Context, issuerID string) error {
	return r.do(ctx, "start_game", func(e *game.Engine) error { return e.StartGame(issuerID) })
}

func (r *Room) PlaceBid(ctx context.Context, playerID string, bid int) error {
	return r.do(ctx, "place_bid", func(e *game.Engine) error { return e.PlaceBid(playerID, bid) })
}

func (r *Room) PlayCard(ctx context.Context, playerID string, cardIdx int) error {
	return r.do(ctx, "play_card", func(e *game.Engine) error { return e.PlayCard(playerID, cardIdx) })
}

func (r *Room) NextRound(ctx context.Context, issuerID string) error {
	return r.do(ctx, "next_round", func(e *game.Engine) error { return e.NextRound(issuerID) })
}

// Leave detaches a player and reports how many connected humans remain.
func (r *Room) Leave(ctx context.Context, playerID string) (int, error) {
	var left int
	err := r.do(ctx, "leave", func(e *game.Engine) error {
		err := e.Leave(playerID)
		left = e.ConnectedHumans()
		return err
	})
	return left, err
}

func (r *Room) Snapshot(ctx context.Context) (game.GameState, error) {
	var s game.GameState
	err := r.do(ctx, "snapshot", func(e *game.Engine) error {
		s = e.Snapshot()
		return nil
	})
	return s, err
}

// Close stops the room goroutine and any pending bot timer. It is safe to
// call more than once.
func (r *Room) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}

// Done is closed once the room has stopped.
func (r *Room) Done() <-chan struct{} { return r.done }
