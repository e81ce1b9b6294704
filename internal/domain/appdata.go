package domain

import "time"

// UserProfile is the singleton profile for this installation.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Address is one entry of the address book. At most one address carries
// IsDefault across the collection.
type Address struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	FullAddress string  `json:"fullAddress"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Pincode     string  `json:"pincode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsDefault   bool    `json:"isDefault"`
}

// Address types.
const (
	AddressTypeHome  = "home"
	AddressTypeWork  = "work"
	AddressTypeOther = "other"
)

// OrderItem is a line of a past order, a trimmed-down CartItem.
type OrderItem struct {
	ProductID  int    `json:"id"`
	Name       string `json:"name"`
	Weight     string `json:"weight,omitempty"`
	PricePaise int64  `json:"pricePaise"`
	Quantity   int    `json:"quantity"`
}

// PastOrder is the durable order record kept in AppData, distinct from the
// session Order list owned by the cart manager.
type PastOrder struct {
	ID              string      `json:"id"`
	Items           []OrderItem `json:"items"`
	DeliveryAddress *Address    `json:"deliveryAddress,omitempty"`
	DeliverySlot    string      `json:"deliverySlot,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	TotalPaise      int64       `json:"totalPaise"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	DeliveredAt     *time.Time  `json:"deliveredAt,omitempty"`
}

// Past-order statuses.
const (
	PastOrderPending   = "pending"
	PastOrderConfirmed = "confirmed"
	PastOrderOnWay     = "on_way"
	PastOrderDelivered = "delivered"
	PastOrderCancelled = "cancelled"
)

// AppData is the persisted root record: everything the profile store owns,
// serialized as one blob under a single key and rewritten wholesale.
type AppData struct {
	Profile     *UserProfile `json:"profile,omitempty"`
	Addresses   []Address    `json:"addresses"`
	PastOrders  []PastOrder  `json:"pastOrders"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

// GeoAddress is the structured result of a reverse-geocoding lookup.
type GeoAddress struct {
	FullAddress string  `json:"fullAddress"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Pincode     string  `json:"pincode,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
