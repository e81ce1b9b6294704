package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kaikari-xpress/internal/cart"
	"kaikari-xpress/internal/domain"
)

type cartResponse struct {
	Items      []domain.CartItem `json:"items"`
	CartCount  int               `json:"cartCount"`
	TotalPaise int64             `json:"totalPaise"`
}

func getCartHandler(m cartManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse{
			Items:      m.Items(),
			CartCount:  m.CartCount(),
			TotalPaise: m.CartTotal(),
		})
	}
}

type addCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

func addCartItemHandler(m cartManager, catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "productId required")
			return
		}
		product, err := catalog.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "product not found")
				return
			}
			respondServiceErr(c, err)
			return
		}
		if err := m.AddToCart(c.Request.Context(), *product); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist cart")
			return
		}
		c.JSON(http.StatusOK, cartResponse{Items: m.Items(), CartCount: m.CartCount(), TotalPaise: m.CartTotal()})
	}
}

type updateQuantityRequest struct {
	Direction string `json:"direction" binding:"required,oneof=increase decrease"`
}

func updateCartQuantityHandler(m cartManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "product id must be numeric")
			return
		}
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "direction must be increase or decrease")
			return
		}
		if err := m.UpdateQuantity(c.Request.Context(), id, cart.Direction(req.Direction)); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist cart")
			return
		}
		c.JSON(http.StatusOK, cartResponse{Items: m.Items(), CartCount: m.CartCount(), TotalPaise: m.CartTotal()})
	}
}

func removeCartItemHandler(m cartManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "product id must be numeric")
			return
		}
		if err := m.RemoveFromCart(c.Request.Context(), id); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist cart")
			return
		}
		c.JSON(http.StatusOK, cartResponse{Items: m.Items(), CartCount: m.CartCount(), TotalPaise: m.CartTotal()})
	}
}

func clearCartHandler(m cartManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.ClearCart(c.Request.Context()); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist cart")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func sessionOrdersHandler(m cartManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": m.Orders()})
	}
}
