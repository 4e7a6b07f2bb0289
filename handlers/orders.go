package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"bistro-api/config"
	"bistro-api/middleware"
	"bistro-api/models"
	"bistro-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// deliveryOffset is added to the creation time to estimate delivery
const deliveryOffset = 45 * time.Minute

type CreateOrderRequest struct {
	Items []struct {
		MenuItem uint `json:"menuItem" binding:"required"`
		Quantity int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
	DeliveryAddress     string `json:"deliveryAddress" binding:"required"`
	ContactNumber       string `json:"contactNumber" binding:"required"`
	PaymentMethod       string `json:"paymentMethod" binding:"omitempty,paymethod"`
	SpecialInstructions string `json:"specialInstructions" binding:"max=200"`
}

// orderLineError carries the HTTP status for a failed line-item check
type orderLineError struct {
	code    int
	message string
}

func (e *orderLineError) Error() string { return e.message }

// CreateOrder validates the item list against the catalog, snapshots
// prices and names, and persists the order. The whole operation runs
// in one transaction: if any line fails, nothing is written.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please add items to your order")
		return
	}

	paymentMethod := models.PaymentMethod(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}

	var order models.Order
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var total float64
		var orderItems []models.OrderItem

		for _, line := range req.Items {
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItem).Error; err != nil {
				return &orderLineError{
					code:    http.StatusNotFound,
					message: fmt.Sprintf("Menu item with id %d not found", line.MenuItem),
				}
			}
			if !item.IsAvailable {
				return &orderLineError{
					code:    http.StatusBadRequest,
					message: item.Name + " is currently not available",
				}
			}

			// Price and name are frozen into the order here; later
			// catalog changes never touch existing orders.
			total += item.Price * float64(line.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: item.ID,
				Name:       item.Name,
				Quantity:   line.Quantity,
				Price:      item.Price,
			})
		}

		order = models.Order{
			UserID:                middleware.GetUserID(c),
			Items:                 orderItems,
			TotalAmount:           total,
			Status:                models.StatusPending,
			DeliveryAddress:       req.DeliveryAddress,
			ContactNumber:         req.ContactNumber,
			PaymentMethod:         paymentMethod,
			PaymentStatus:         models.PaymentPending,
			SpecialInstructions:   req.SpecialInstructions,
			EstimatedDeliveryTime: time.Now().Add(deliveryOffset),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		var lineErr *orderLineError
		if errors.As(err, &lineErr) {
			fail(c, lineErr.code, lineErr.message)
			return
		}
		fail(c, http.StatusInternalServerError, "Error creating order")
		return
	}

	respond(c, http.StatusCreated, "Order placed successfully", order)
}

// GetMyOrders returns the caller's orders, newest first
func GetMyOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("user_id = ?", middleware.GetUserID(c)).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	respondList(c, len(orders), orders)
}

// GetAllOrders returns every order, newest first (admin only)
func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Items").Preload("User").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	respondList(c, len(orders), orders)
}

// GetOrder returns a single order; only the owner or an admin may read it
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").Preload("User").
		First(&order, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != middleware.GetUserID(c) && !middleware.IsAdmin(c) {
		fail(c, http.StatusForbidden, "Not authorized to view this order")
		return
	}
	respond(c, http.StatusOK, "", order)
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus sets an order's status directly (admin only).
// Only enum membership is checked; the admin may jump states.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}
	if !statemachine.IsValidStatus(req.Status) {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error updating order status")
		return
	}
	respond(c, http.StatusOK, "Order status updated to "+string(req.Status), order)
}

// CancelOrder cancels an order; allowed for the owner or an admin while
// the order is still pending or confirmed
func CancelOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != middleware.GetUserID(c) && !middleware.IsAdmin(c) {
		fail(c, http.StatusForbidden, "Not authorized to cancel this order")
		return
	}
	if err := statemachine.CanCancel(order.Status); err != nil {
		fail(c, http.StatusBadRequest, "Order cannot be cancelled at this stage")
		return
	}

	if err := config.DB.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error cancelling order")
		return
	}
	respond(c, http.StatusOK, "Order cancelled successfully", order)
}

// StateMachineInfo documents the order lifecycle (public)
func StateMachineInfo(c *gin.Context) {
	respond(c, http.StatusOK, "", gin.H{
		"states":          statemachine.AllStatuses,
		"transitions":     statemachine.AllTransitions(),
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Order Lifecycle State Machine",
	})
}
