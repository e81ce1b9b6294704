package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kaikari-xpress/internal/domain"
)

// Fee thresholds, in paise. Delivery above Rs 200 is free, otherwise Rs 40;
// every order carries a flat Rs 5 platform fee.
const (
	freeDeliveryAbovePaise = 20000
	deliveryFeePaise       = 4000
	platformFeePaise       = 500
)

type checkoutRequest struct {
	AddressID     string `json:"addressId"`
	DeliverySlot  string `json:"deliverySlot" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type checkoutResponse struct {
	OrderID          string `json:"orderId"`
	PastOrderID      string `json:"pastOrderId"`
	SubtotalPaise    int64  `json:"subtotalPaise"`
	DeliveryFeePaise int64  `json:"deliveryFeePaise"`
	PlatformFeePaise int64  `json:"platformFeePaise"`
	TotalPaise       int64  `json:"totalPaise"`
}

// checkoutHandler places the order in both stores: the session history
// owned by the cart manager and the durable past-order list in AppData.
func checkoutHandler(m cartManager, store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "deliverySlot and paymentMethod required")
			return
		}

		items := m.Items()
		if len(items) == 0 {
			respondError(c, http.StatusBadRequest, "cart is empty")
			return
		}

		subtotal := m.CartTotal()
		var deliveryFee int64 = deliveryFeePaise
		if subtotal > freeDeliveryAbovePaise {
			deliveryFee = 0
		}
		total := subtotal + deliveryFee + platformFeePaise

		ctx := c.Request.Context()
		address := resolveAddress(c, store, req.AddressID)

		orderID, err := m.PlaceOrder(ctx, total)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist order")
			return
		}

		orderItems := make([]domain.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, domain.OrderItem{
				ProductID:  item.ProductID,
				Name:       item.Name,
				Weight:     item.Weight,
				PricePaise: item.PricePaise,
				Quantity:   item.Quantity,
			})
		}
		past, err := store.AddOrder(ctx, domain.PastOrder{
			Items:           orderItems,
			DeliveryAddress: address,
			DeliverySlot:    req.DeliverySlot,
			PaymentMethod:   req.PaymentMethod,
			TotalPaise:      total,
			Status:          domain.PastOrderPending,
		})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to record order")
			return
		}

		c.JSON(http.StatusCreated, checkoutResponse{
			OrderID:          orderID,
			PastOrderID:      past.ID,
			SubtotalPaise:    subtotal,
			DeliveryFeePaise: deliveryFee,
			PlatformFeePaise: platformFeePaise,
			TotalPaise:       total,
		})
	}
}

// resolveAddress picks the requested address, falling back to the default.
// Checkout proceeds without one; the address book may be empty.
func resolveAddress(c *gin.Context, store appStorage, addressID string) *domain.Address {
	ctx := c.Request.Context()
	if addressID != "" {
		for _, a := range store.Addresses(ctx) {
			if a.ID == addressID {
				return &a
			}
		}
	}
	return store.DefaultAddress(ctx)
}
