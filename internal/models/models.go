package models

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// Product is a catalog entry. Catalog entries are created once at startup
// and never mutated.
type Product struct {
	ID              string  `json:"id"`
	CategoryID      string  `json:"categoryId"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	LongDescription string  `json:"longDescription"`
	Price           float64 `json:"price"`
	Unit            string  `json:"unit"`
	Image           string  `json:"image"`
}

// CartItem is a product plus the quantity selected. At most one item per
// product id exists in a cart, and quantity is always >= 1.
type CartItem struct {
	Product
	Quantity uint `json:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusPicking   OrderStatus = "picking"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ParseOrderStatus validates enum membership only. Any status may replace
// any other; there is no transition graph.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusReceived:
		return OrderStatusReceived, nil
	case OrderStatusPicking:
		return OrderStatusPicking, nil
	case OrderStatusShipping:
		return OrderStatusShipping, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// OrderItem is a frozen copy of a cart line at checkout time. Subtotal is
// fixed at creation and does not follow later catalog price changes.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity uint    `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
	Image    string  `json:"image"`
}

type ShippingAddress struct {
	Address   string `json:"address"`
	Reference string `json:"reference,omitempty"`
	Phone     string `json:"phone"`
}

// Order is an immutable snapshot of a checked-out cart. Status is the only
// field ever rewritten after creation.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	UserEmail       string          `json:"userEmail"`
	UserName        string          `json:"userName"`
	Items           []OrderItem     `json:"items"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}
