package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/fatimaknt/Push-Agri-Farm/internal/auth"
	"github.com/fatimaknt/Push-Agri-Farm/internal/store"
	"github.com/fatimaknt/Push-Agri-Farm/internal/validation"
)

// userProjection is the public view of a user returned by the auth
// routes. The password hash never leaves the store layer.
type userProjection struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

const badCredentialsMessage = "Incorrect email or password"

func registerHandler(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.RegisterRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		existing, err := cfg.Store.FindUserByEmail(ctx, req.Email)
		if err != nil {
			serverError(c, cfg.Logger, "register: lookup failed", err)
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "This email is already in use"})
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			serverError(c, cfg.Logger, "register: hash failed", err)
			return
		}

		user := &store.User{
			Email:        req.Email,
			PasswordHash: hash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Phone:        req.Phone,
			Address:      req.Address,
		}
		id, err := cfg.Store.InsertUser(ctx, user)
		if err != nil {
			// the unique index can still trip under concurrent registration
			if errors.Is(err, store.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "This email is already in use"})
				return
			}
			serverError(c, cfg.Logger, "register: insert failed", err)
			return
		}

		token, err := cfg.Tokens.Mint(id, req.Email)
		if err != nil {
			serverError(c, cfg.Logger, "register: token mint failed", err)
			return
		}

		cfg.Logger.Info("user registered", "user_id", id)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Account created successfully",
			"token":   token,
			"user": userProjection{
				ID:        id,
				Email:     req.Email,
				FirstName: req.FirstName,
				LastName:  req.LastName,
			},
		})
	}
}

func loginHandler(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.LoginRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		user, err := cfg.Store.FindUserByEmail(ctx, req.Email)
		if err != nil {
			serverError(c, cfg.Logger, "login: lookup failed", err)
			return
		}
		// same message for unknown email and wrong password; the client
		// must not learn which one was wrong
		if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": badCredentialsMessage})
			return
		}

		token, err := cfg.Tokens.Mint(user.ID, user.Email)
		if err != nil {
			serverError(c, cfg.Logger, "login: token mint failed", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"token":   token,
			"user": userProjection{
				ID:        user.ID,
				Email:     user.Email,
				FirstName: user.FirstName,
				LastName:  user.LastName,
			},
		})
	}
}
