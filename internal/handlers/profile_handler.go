package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/fatimaknt/Push-Agri-Farm/internal/validation"
)

func updateProfileHandler(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.UpdateProfileRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		affected, err := cfg.Store.UpdateUserProfile(ctx, req.UserID, req.FirstName, req.LastName, req.Phone, req.Address)
		if err != nil {
			serverError(c, cfg.Logger, "profile: update failed", err)
			return
		}
		if affected == 0 {
			// a non-matching userId updates zero rows and still reports
			// success; kept for compatibility with the storefront client
			cfg.Logger.Warn("profile update matched no user", "user_id", req.UserID)
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Profile updated successfully",
		})
	}
}
