package http

import (
	"judgement/internal/api/ws"
	"judgement/internal/config"
	"judgement/internal/room"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.GET("/health", HealthHandler)

	// WebSocket for live game state
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms", ListRoomsHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm, cfg.RedactHands))

	// --- GAME ENDPOINTS ---
	r.POST("/rooms/:code/actions", ActionHandler(rm, cfg.RedactHands))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/defaults", DefaultsHandler(cfg))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
