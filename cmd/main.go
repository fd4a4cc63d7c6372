package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"PokerCoach/config"
	"PokerCoach/internal/coach"
	"PokerCoach/internal/llm"
	"PokerCoach/internal/middleware"
	"PokerCoach/internal/utils"
)

func main() {
	cfg, err := config.Load("config")
	if err != nil {
		utils.NewLogger(os.Stderr, "info").Fatal("Failed to load config", "err", err)
	}
	logger := utils.NewLogger(os.Stderr, cfg.Log.Level)

	//-------------------------------------------------------
	// 1. Completion backend
	//-------------------------------------------------------
	llmClient := llm.NewClient(
		&http.Client{Timeout: cfg.LLM.Timeout},
		cfg.LLM.BaseURL,
		cfg.LLM.APIKey,
		cfg.LLM.Model,
		logger,
	)
	svc := coach.NewService(llmClient, logger)

	//-------------------------------------------------------
	// 2. Gin + CORS + routes
	//-------------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := newRouter(cfg, svc, logger)

	//-------------------------------------------------------
	// 3. Serve until SIGINT / SIGTERM
	//-------------------------------------------------------
	srv := &http.Server{Addr: cfg.Server.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server running", "addr", cfg.Server.Port, "backend", cfg.LLM.BaseURL, "model", llmClient.Model())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

func newRouter(cfg config.Config, svc *coach.Service, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	coach.NewHandler(svc, logger).Register(r)
	return r
}

func corsConfig(cfg config.Config) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", middleware.HeaderRequestID},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORS.AllowOrigins
	}
	return c
}
