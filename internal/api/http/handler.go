package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"judgement/internal/game"
	"judgement/internal/room"
	"judgement/internal/shared"
)

const requestTimeout = 5 * time.Second

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Create new room
// @Description Opens an empty room under a random code. Players join with join_room.
// @Tags Room
// @Produce json
// @Success 201 {object} CreateRoomResponse
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := rm.CreateRoom()
		c.JSON(http.StatusCreated, CreateRoomResponse{RoomCode: r.Code})
	}
}

// @Summary List rooms
// @Tags Room
// @Produce json
// @Success 200 {array} RoomSummary
// @Router /rooms [get]
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		out := []RoomSummary{}
		for _, r := range rm.List() {
			s, err := r.Snapshot(ctx)
			if err != nil {
				continue
			}
			out = append(out, RoomSummary{
				Code:      r.Code,
				Phase:     s.Phase,
				Players:   len(s.Players),
				Round:     s.CurrentRound.RoundNumber,
				CreatedAt: r.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Get room state
// @Description Returns the room's current game state. With hand redaction on,
// @Description only the hand of playerId is visible.
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Param playerId query string false "Viewer id"
// @Success 200 {object} game.GameState
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager, redact bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(roomCode(c))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		s, err := r.Snapshot(ctx)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		if redact {
			s = s.RedactedFor(c.Query("playerId"))
		}
		c.JSON(http.StatusOK, s)
	}
}

// @Summary Apply an action
// @Description Runs one command (join_room, add_bot, start_game, place_bid, play_card,
// @Description next_round, leave_room) against the room. The new state is also
// @Description broadcast to websocket clients.
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body ActionRequest true "Command"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{code}/actions [post]
func ActionHandler(rm *room.Manager, redact bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		r, ok := rm.Get(roomCode(c))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if req.PlayerID == "" {
			if req.Action != shared.ActionJoinRoom {
				c.JSON(http.StatusBadRequest, gin.H{"error": "playerId required"})
				return
			}
			req.PlayerID = uuid.NewString()
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		if err := r.Execute(ctx, req.Action, req.PlayerID, req.command(), rm.BotName()); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		s, err := r.Snapshot(ctx)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		if req.Action == shared.ActionLeave && !anyHumanConnected(s) {
			rm.Remove(r.Code)
		}
		if redact {
			s = s.RedactedFor(req.PlayerID)
		}
		c.JSON(http.StatusOK, ActionResponse{PlayerID: req.PlayerID, State: s})
	}
}

func anyHumanConnected(s game.GameState) bool {
	for _, p := range s.Players {
		if !p.IsBot && p.IsConnected {
			return true
		}
	}
	return false
}

func roomCode(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("code")))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomClosed):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, game.ErrInvariant):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
