package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/fatimaknt/Push-Agri-Farm/internal/auth"
	"github.com/fatimaknt/Push-Agri-Farm/internal/config"
	"github.com/fatimaknt/Push-Agri-Farm/internal/handlers"
	"github.com/fatimaknt/Push-Agri-Farm/internal/mail"
	"github.com/fatimaknt/Push-Agri-Farm/internal/netutil"
	"github.com/fatimaknt/Push-Agri-Farm/internal/store"
	"github.com/fatimaknt/Push-Agri-Farm/internal/store/postgres"
	"github.com/fatimaknt/Push-Agri-Farm/internal/store/sqlite"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func openStore(cfg config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.StoreBackend {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres backend selected but DATABASE_URL is empty")
		}
		return postgres.Open(cfg.DatabaseURL, logger)
	case "memory":
		logger.Warn("running without persistent storage")
		return store.NewMemory(), nil
	default:
		return sqlite.Open(cfg.DatabasePath, logger)
	}
}

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	db, err := openStore(cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	hcfg := handlers.HandlerConfig{
		Store:     db,
		Tokens:    auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Mailer:    mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass),
		MailFrom:  cfg.EmailUser,
		MailTo:    cfg.EmailTo,
		Logger:    logger,
		StaticDir: cfg.StaticDir,
	}

	r := setupRouter(hcfg)

	port, err := netutil.FindAvailablePort(context.Background(), cfg.Port, cfg.MaxPortAttempts)
	if err != nil {
		log.Fatalf("failed to find a listening port: %v", err)
	}
	if port != cfg.Port {
		logger.Warn("configured port busy, using next free one", "configured", cfg.Port, "port", port)
	}

	logger.Info("server listening", "port", port, "backend", cfg.StoreBackend)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
