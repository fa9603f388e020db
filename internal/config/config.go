package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"judgement/internal/game"
)

type Config struct {
	HTTPAddr       string
	AllowedOrigins []string
	LogLevel       string

	MaxPlayers  int
	TargetScore int
	// Seed fixes every room's shuffle when non-zero.
	Seed int64

	BotDelay    time.Duration
	BotName     string
	RedactHands bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() Config {
	addr := getenv("HTTP_ADDR", "")
	if addr == "" {
		addr = ":" + getenv("PORT", "3001")
	}

	var origins []string
	for _, o := range strings.Split(getenv("ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	maxPlayers := getenvInt("MAX_PLAYERS", 8)
	if maxPlayers < 1 || maxPlayers > 8 {
		maxPlayers = 8
	}

	return Config{
		HTTPAddr:       addr,
		AllowedOrigins: origins,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		MaxPlayers:     maxPlayers,
		TargetScore:    getenvInt("TARGET_SCORE", 100),
		Seed:           int64(getenvInt("GAME_SEED", 0)),
		BotDelay:       time.Duration(getenvInt("BOT_DELAY_MS", 1000)) * time.Millisecond,
		BotName:        getenv("BOT_NAME", "Robot Singh"),
		RedactHands:    getenvBool("REDACT_HANDS", false),
	}
}

// Settings returns the game settings every new room starts with.
func (c Config) Settings() game.Settings {
	s := game.DefaultSettings()
	s.MaxPlayers = c.MaxPlayers
	s.TargetScore = c.TargetScore
	return s
}

// OriginAllowed reports whether a websocket handshake from origin may proceed.
func (c Config) OriginAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
