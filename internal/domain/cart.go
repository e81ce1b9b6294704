package domain

import "time"

// CartItem is one product entry in the cart with an associated quantity.
// Quantity is always >= 1; items that reach zero are removed, never stored.
type CartItem struct {
	ProductID     int       `json:"id"`
	Name          string    `json:"name"`
	PricePaise    int64     `json:"pricePaise"`
	OldPricePaise *int64    `json:"oldPricePaise,omitempty"`
	Quantity      int       `json:"quantity"`
	Image         string    `json:"image,omitempty"`
	Weight        string    `json:"weight,omitempty"`
	AddedAt       time.Time `json:"addedAt"`
}

// Order is an immutable snapshot of the cart taken when the order was
// placed. It belongs to the session order list, which is a separate store
// from AppData.PastOrders.
type Order struct {
	ID         string     `json:"id"`
	Date       time.Time  `json:"date"`
	Items      []CartItem `json:"items"`
	TotalPaise int64      `json:"totalPaise"`
	Status     string     `json:"status"`
}

// Session order statuses.
const (
	OrderStatusActive    = "Active"
	OrderStatusCompleted = "Completed"
)
