package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/fatimaknt/Push-Agri-Farm/internal/mail"
	"github.com/fatimaknt/Push-Agri-Farm/internal/validation"
)

func contactHandler(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.ContactRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		msg, err := mail.ContactMessage(cfg.MailFrom, cfg.MailTo, req.Name, req.Email, req.Phone, req.Message)
		if err != nil {
			serverError(c, cfg.Logger, "contact: render failed", err)
			return
		}

		// single send attempt; a relay failure is reported, not queued
		if err := cfg.Mailer.Send(ctx, msg); err != nil {
			cfg.Logger.Error("contact: send failed", "error", err, "request_id", c.GetString("request_id"))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error sending message"})
			return
		}

		cfg.Logger.Info("contact message relayed", "to", cfg.MailTo)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Message sent successfully!",
		})
	}
}
