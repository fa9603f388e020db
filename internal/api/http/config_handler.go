package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"judgement/internal/config"
	"judgement/internal/game"
)

// DefaultsHandler returns the settings new rooms start with
// @Summary Get room defaults
// @Description Returns seat cap, target score, bot pacing and the ladder schedule per player count
// @Tags Config
// @Produce json
// @Success 200 {object} DefaultsResponse
// @Router /config/defaults [get]
func DefaultsHandler(cfg config.Config) gin.HandlerFunc {
	settings := cfg.Settings()
	schedule := make(map[int][]int, settings.MaxPlayers)
	for n := 1; n <= settings.MaxPlayers; n++ {
		schedule[n] = game.RoundSchedule(n)
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, DefaultsResponse{
			Settings:    settings,
			BotDelayMS:  cfg.BotDelay.Milliseconds(),
			BotName:     cfg.BotName,
			RedactHands: cfg.RedactHands,
			Schedule:    schedule,
		})
	}
}
