package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fatimaknt/Push-Agri-Farm/internal/auth"
	"github.com/fatimaknt/Push-Agri-Farm/internal/mail"
	"github.com/fatimaknt/Push-Agri-Farm/internal/store"
	"github.com/fatimaknt/Push-Agri-Farm/internal/validation"
)

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	Store     store.Store
	Tokens    *auth.TokenIssuer
	Mailer    mail.Sender
	MailFrom  string
	MailTo    string
	Logger    *slog.Logger
	StaticDir string
}

// RegisterRoutes wires every API route plus static serving onto r.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.Use(RequestID(), CORS())

	api := r.Group("/api")
	api.POST("/register", registerHandler(cfg, v))
	api.POST("/login", loginHandler(cfg, v))
	api.PUT("/profile", updateProfileHandler(cfg, v))
	api.POST("/orders", saveOrderHandler(cfg, v))
	api.GET("/orders/:userId", listOrdersHandler(cfg))
	api.POST("/contact", contactHandler(cfg, v))

	r.NoRoute(staticHandler(cfg))
}

// RequestID tags each request with an X-Request-Id, preserving one the
// caller already sent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)
		c.Set("request_id", id)
		c.Next()
	}
}

// CORS mirrors the storefront's permissive cross-origin policy.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-Id")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// staticHandler serves the pre-built front-end bundle. Unmatched GET
// paths outside /api fall back to index.html so client-side routing
// works; unmatched API paths stay JSON 404s.
func staticHandler(cfg HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
			return
		}
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
			return
		}

		candidate := filepath.Join(cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	}
}

// serverError writes the generic 500 envelope; internal detail goes to
// the log only.
func serverError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.Error(op, "error", err, "request_id", c.GetString("request_id"))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}
