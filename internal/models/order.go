package models

import "time"

type OrderStatus string

const (
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderBill is the bill captured at order time, embedded in the order row.
type OrderBill struct {
	Total        float64 `json:"total"`
	Tax          float64 `json:"tax"`
	TotalWithTax float64 `json:"totalWithTax"`
}

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// OrderID is the human readable "ORD-NNNNN" identifier. It is generated
	// from a random 5 digit number and never checked against existing
	// orders, so the column is deliberately indexed but not unique.
	OrderID       string      `gorm:"size:20;index;not null" json:"orderId"`
	CustomerName  string      `gorm:"size:100" json:"customerName"`
	CustomerPhone string      `gorm:"size:20" json:"customerPhone"`
	Guests        int         `json:"guests"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
	Bills         OrderBill   `gorm:"embedded;embeddedPrefix:bill_" json:"bills"`
	OrderStatus   OrderStatus `gorm:"size:20;index;not null" json:"orderStatus"`
	PaymentMethod string      `gorm:"size:50" json:"paymentMethod"`
	// Raw payment gateway metadata as received, if any.
	PaymentData string    `gorm:"type:text" json:"paymentData,omitempty"`
	ServerID    uint      `gorm:"index;not null" json:"serverId"`
	Server      *User     `json:"server,omitempty"`
	TableNumber *string   `gorm:"size:20" json:"table,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrderItem is a denormalized snapshot of a dish at order time. Name,
// category and price are copied so later menu edits do not rewrite history.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index;not null" json:"-"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Category string  `gorm:"size:100" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}
