package models

import "time"

// OrderItem captures one cart line at checkout time. Price is the unit
// price at the moment the order was placed.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ShippingInfo is the delivery address collected by the checkout form.
type ShippingInfo struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
}

// Order represents a placed order.
type Order struct {
	ID        string       `json:"id"`
	SessionID string       `json:"session_id"`
	Items     []OrderItem  `json:"items"`
	Shipping  ShippingInfo `json:"shipping"`
	Subtotal  float64      `json:"subtotal"`
	Delivery  float64      `json:"delivery"`
	Tax       float64      `json:"tax"`
	Total     float64      `json:"total"`
	Status    string       `json:"status"` // "pending", "confirmed", "shipped", "delivered"
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
