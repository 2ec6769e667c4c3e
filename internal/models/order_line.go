package models

import "time"

// OrderLine is an immutable record of one cart line. ItemName and UnitPrice are
// copies taken at order time, not references to a MenuItem.
type OrderLine struct {
	ID         uint      `json:"orderId" gorm:"primaryKey"`
	ItemName   string    `json:"itemName" gorm:"type:varchar(255);not null"`
	UnitPrice  float64   `json:"unitPrice" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	TotalPrice float64   `json:"totalPrice" gorm:"not null"`
	OrderTime  time.Time `json:"orderTime" gorm:"autoCreateTime;not null;index"`
}

func (OrderLine) TableName() string {
	return "orders"
}

// CartLine is one entry of a cart submitted for placement or quoting.
type CartLine struct {
	ItemName   string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

type OrderStats struct {
	TotalOrders       int64   `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type Quote struct {
	Lines    []CartLine `json:"lines"`
	Subtotal float64    `json:"subtotal"`
	CGST     float64    `json:"cgst"`
	SGST     float64    `json:"sgst"`
	Total    float64    `json:"total"`
}
