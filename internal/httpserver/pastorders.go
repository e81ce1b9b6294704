package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kaikari-xpress/internal/domain"
	"kaikari-xpress/internal/storage"
)

func listPastOrdersHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": store.Orders(c.Request.Context())})
	}
}

func getPastOrderHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		order := store.OrderByID(c.Request.Context(), c.Param("id"))
		if order == nil {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type pastOrderPatchRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending confirmed on_way delivered cancelled"`
}

func updatePastOrderHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req pastOrderPatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid order patch")
			return
		}
		ctx := c.Request.Context()
		id := c.Param("id")
		if store.OrderByID(ctx, id) == nil {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		patch := storage.OrderPatch{Status: req.Status}
		if req.Status != nil && *req.Status == domain.PastOrderDelivered {
			now := time.Now().UTC()
			patch.DeliveredAt = &now
		}
		if err := store.UpdateOrder(ctx, id, patch); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist order")
			return
		}
		c.JSON(http.StatusOK, store.OrderByID(ctx, id))
	}
}
