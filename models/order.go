package models

import "time"

// OrderStatus represents the states an order moves through on the board
type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusOnCook    OrderStatus = "on_cook"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderType is the fulfillment channel of an order
type OrderType string

const (
	TypeDineIn   OrderType = "dine_in"
	TypeTakeaway OrderType = "takeaway"
)

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UID         string      `json:"uid" gorm:"uniqueIndex;not null"` // client-safe identifier, assigned before any backend ack
	OrderNumber string      `json:"order_number"`                    // display string, e.g. "0045"
	Type        OrderType   `json:"type" gorm:"not null"`
	TableNumber string      `json:"table_number,omitempty"` // present iff dine_in
	Items       []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalItems  int         `json:"total_items"` // snapshot at creation, never recomputed
	TotalPrice  float64     `json:"total_price"` // snapshot at creation, never recomputed
	Status      OrderStatus `json:"status" gorm:"not null;default:'new'"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	Name     string  `json:"name"`                  // snapshot name
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot unit price at time of order
}
