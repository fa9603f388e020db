package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"judgement/internal/config"
	"judgement/internal/game"
	"judgement/internal/room"
	"judgement/internal/shared"
)

const (
	writeWait      = 10 * time.Second
	commandTimeout = 5 * time.Second
	sendBuffer     = 64
)

type client struct {
	conn     *websocket.Conn
	playerID string
	roomCode string
	send     chan []byte
}

type envelope struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

// Hub tracks websocket connections per room and relays commands to rooms.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
	redact      bool
	logger      *zap.Logger
	upgrader    websocket.Upgrader
}

func NewHub(roomManager RoomManager, cfg config.Config, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
		redact:      cfg.RedactHands,
		logger:      logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return cfg.OriginAllowed(r.Header.Get("Origin"))
			},
		},
	}
}

// HandleWS upgrades the request and serves the connection until it closes.
// The client joins a room with a join_room message.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		conn:     conn,
		playerID: uuid.NewString(),
		send:     make(chan []byte, sendBuffer),
	}
	go cl.writePump(h.logger)
	h.logger.Debug("connection opened", zap.String("player", cl.playerID))

	defer func() {
		h.disconnect(cl)
		close(cl.send)
		_ = conn.Close()
	}()

	h.sendTo(cl, shared.ActionWelcome, shared.WelcomeData{PlayerID: cl.playerID})
	if code := strings.TrimSpace(c.Query("room_code")); code != "" {
		h.handle(cl, shared.Message{Action: shared.ActionJoinRoom, Data: mustJSON(shared.Command{
			RoomCode: code,
			Name:     c.Query("name"),
		})})
	}

	for {
		var msg shared.Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Info("websocket read failed", zap.String("player", cl.playerID), zap.Error(err))
			}
			return
		}
		h.handle(cl, msg)
	}
}

func (h *Hub) handle(cl *client, msg shared.Message) {
	var cmd shared.Command
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &cmd); err != nil {
			h.reject(cl, msg.Action, errors.New("invalid payload"))
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var err error
	switch msg.Action {
	case shared.ActionJoinRoom:
		err = h.join(ctx, cl, cmd)
	case shared.ActionLeave:
		h.disconnect(cl)
	case shared.ActionSignal:
		err = h.relaySignal(cl, cmd)
	default:
		r, ok := h.currentRoom(cl)
		if !ok {
			err = errors.New("join a room first")
			break
		}
		err = r.Execute(ctx, msg.Action, cl.playerID, cmd, h.roomManager.BotName())
	}
	if err != nil {
		h.reject(cl, msg.Action, err)
	}
}

func (h *Hub) join(ctx context.Context, cl *client, cmd shared.Command) error {
	code := strings.ToUpper(strings.TrimSpace(cmd.RoomCode))
	if code == "" {
		return errors.New("roomCode required")
	}
	if cl.roomCode != "" {
		return errors.New("already in a room")
	}

	r, created := h.roomManager.GetOrCreate(code)
	h.register(code, cl)
	err := r.Execute(ctx, shared.ActionJoinRoom, cl.playerID, cmd, "")
	if err != nil {
		h.unregister(cl)
		if created {
			h.roomManager.Remove(code)
		}
		return err
	}
	h.logger.Info("player joined", zap.String("room", code), zap.String("player", cl.playerID))
	return nil
}

// disconnect detaches cl from its room. The room is discarded once no
// connected human is left in it.
func (h *Hub) disconnect(cl *client) {
	code := cl.roomCode
	if code == "" {
		return
	}
	h.unregister(cl)

	r, ok := h.roomManager.Get(code)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	left, err := r.Leave(ctx, cl.playerID)
	if err != nil && !errors.Is(err, game.ErrUnknownPlayer) {
		h.logger.Warn("leave failed", zap.String("room", code), zap.String("player", cl.playerID), zap.Error(err))
		return
	}
	if left == 0 {
		h.roomManager.Remove(code)
	}
}

func (h *Hub) relaySignal(cl *client, cmd shared.Command) error {
	if cl.roomCode == "" {
		return errors.New("join a room first")
	}
	if cmd.TargetID == "" {
		return errors.New("targetId required")
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for other := range h.rooms[cl.roomCode] {
		if other.playerID == cmd.TargetID {
			h.sendTo(other, shared.ActionSignal, shared.SignalData{From: cl.playerID, Signal: cmd.Signal})
			return nil
		}
	}
	return errors.New("target not connected")
}

func (h *Hub) currentRoom(cl *client) (*room.Room, bool) {
	if cl.roomCode == "" {
		return nil, false
	}
	return h.roomManager.Get(cl.roomCode)
}

func (h *Hub) register(code string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[code]; !ok {
		h.rooms[code] = make(map[*client]struct{})
	}
	h.rooms[code][cl] = struct{}{}
	cl.roomCode = code
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[cl.roomCode]; ok {
		delete(clients, cl)
		if len(clients) == 0 {
			delete(h.rooms, cl.roomCode)
		}
	}
	cl.roomCode = ""
}

// Broadcast sends to every connection in the room. Game states are redacted
// per viewer when hand redaction is on.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	state, isState := data.(game.GameState)
	if h.redact && isState {
		for cl := range clients {
			h.sendTo(cl, action, state.RedactedFor(cl.playerID))
		}
		return
	}

	payload, err := json.Marshal(envelope{Action: action, Data: data})
	if err != nil {
		h.logger.Error("encode broadcast", zap.String("room", roomCode), zap.Error(err))
		return
	}
	for cl := range clients {
		h.push(cl, payload)
	}
}

func (h *Hub) reject(cl *client, action string, err error) {
	h.logger.Debug("command rejected",
		zap.String("room", cl.roomCode),
		zap.String("player", cl.playerID),
		zap.String("action", action),
		zap.Error(err),
	)
	h.sendTo(cl, shared.ActionError, shared.ErrorData{Message: err.Error()})
}

func (h *Hub) sendTo(cl *client, action string, data interface{}) {
	payload, err := json.Marshal(envelope{Action: action, Data: data})
	if err != nil {
		h.logger.Error("encode message", zap.String("action", action), zap.Error(err))
		return
	}
	h.push(cl, payload)
}

// push never blocks the caller; a client too slow to drain its buffer is
// disconnected.
func (h *Hub) push(cl *client, payload []byte) {
	select {
	case cl.send <- payload:
	default:
		h.logger.Warn("client send buffer full", zap.String("player", cl.playerID))
		_ = cl.conn.Close()
	}
}

func (cl *client) writePump(logger *zap.Logger) {
	for payload := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Debug("write failed", zap.String("player", cl.playerID), zap.Error(err))
			_ = cl.conn.Close()
		}
	}
}

func mustJSON(v interface{}) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
