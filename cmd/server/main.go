package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "judgement/internal/api/http"
	"judgement/internal/api/ws"
	"judgement/internal/config"
	"judgement/internal/logger"
	"judgement/internal/room"
	"judgement/internal/store"

	// swagger packages
	_ "judgement/docs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Judgement Game Server API
// @version 1.0
// @description Rooms, commands and live state for the Judgement trick-taking card game (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg := config.Load()
	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, nil, lg)
	hub := ws.NewHub(rm, cfg, lg)
	rm.SetHub(hub)
	r := httpapi.NewRouter(rm, hub, cfg)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Warn("shutdown", zap.Error(err))
	}
	for _, rr := range rm.List() {
		rr.Close()
	}
}
