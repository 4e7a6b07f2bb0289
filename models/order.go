package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is how the customer intends to pay
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

// PaymentStatus tracks the (external) payment outcome
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Order struct {
	ID                    uint          `json:"id" gorm:"primaryKey"`
	UserID                uint          `json:"userId" gorm:"not null"`
	User                  User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items                 []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalAmount           float64       `json:"totalAmount" gorm:"not null"` // computed once at creation
	Status                OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	DeliveryAddress       string        `json:"deliveryAddress" gorm:"not null"`
	ContactNumber         string        `json:"contactNumber" gorm:"not null"`
	PaymentMethod         PaymentMethod `json:"paymentMethod" gorm:"default:'cash'"`
	PaymentStatus         PaymentStatus `json:"paymentStatus" gorm:"default:'pending'"`
	SpecialInstructions   string        `json:"specialInstructions" gorm:"size:200"`
	EstimatedDeliveryTime time.Time     `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"orderId" gorm:"not null"`
	MenuItemID uint    `json:"menuItemId" gorm:"not null"`
	Name       string  `json:"name"`                    // snapshot name at time of order
	Quantity   int     `json:"quantity" gorm:"not null"`
	Price      float64 `json:"price" gorm:"not null"` // snapshot price at time of order
}
