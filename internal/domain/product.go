package domain

import "time"

type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Weight        string    `json:"weight"`
	PricePaise    int64     `json:"pricePaise"`
	OldPricePaise *int64    `json:"oldPricePaise,omitempty"`
	Category      string    `json:"category"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}
