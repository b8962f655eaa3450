package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/fatimaknt/Push-Agri-Farm/internal/store"
	"github.com/fatimaknt/Push-Agri-Farm/internal/validation"
)

func saveOrderHandler(cfg HandlerConfig, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.SaveOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		// orderData is stored as serialized text, never interpreted.
		// Note: no check that the user exists; an order can reference
		// any id the client sends.
		order := &store.Order{
			UserID:     req.UserID,
			OrderData:  string(req.OrderData),
			TotalPrice: req.TotalPrice,
			TotalItems: req.TotalItems,
			Status:     store.StatusPending,
		}
		id, err := cfg.Store.InsertOrder(ctx, order)
		if err != nil {
			serverError(c, cfg.Logger, "orders: insert failed", err)
			return
		}

		cfg.Logger.Info("order saved", "order_id", id, "user_id", req.UserID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order saved successfully",
			"orderId": id,
		})
	}
}

func listOrdersHandler(cfg HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
			return
		}

		orders, err := cfg.Store.ListOrdersByUser(ctx, userID)
		if err != nil {
			serverError(c, cfg.Logger, "orders: list failed", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orders":  orders,
		})
	}
}
