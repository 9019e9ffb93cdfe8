package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/south-indian-kitchen/backend/events"
	"github.com/south-indian-kitchen/backend/middlewares"
	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/services"
	"github.com/south-indian-kitchen/backend/storage"
	"github.com/south-indian-kitchen/backend/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Store    *storage.CartStore
	Checkout *services.CheckoutService
}

func NewOrderController(db *gorm.DB, store *storage.CartStore, checkout *services.CheckoutService) *OrderController {
	return &OrderController{DB: db, Store: store, Checkout: checkout}
}

// PlaceOrder -> POST /checkout {customer_name, customer_email}
// Runs payment authorization then order creation against the session cart.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	type request struct {
		CustomerName  string `json:"customer_name" binding:"required"`
		CustomerEmail string `json:"customer_email" binding:"required,email"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session := middlewares.SessionFromContext(c)
	items := oc.Store.Load(session)

	order, err := oc.Checkout.Checkout(c.Request.Context(), items, req.CustomerName, req.CustomerEmail)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, models.ErrPaymentDeclined):
			utils.RespondError(c, http.StatusPaymentRequired, err)
		case errors.Is(err, models.ErrOrderCreationFailed):
			utils.RespondError(c, http.StatusBadGateway, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	// Success empties the cart; a failed payment leaves it for a retry.
	oc.Store.Clear(session)
	events.BroadcastCartUpdate(session, []models.CartItem{}, 0, 0)
	events.BroadcastOrderCreate(*order)

	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetAllOrders -> admin list, insertion order
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items").Order("created_at").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> single order with items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, models.ErrNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> PATCH /admin/orders/:order_id/status {status}
// Any of the five statuses may be set from any other.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("order_id")

	type request struct {
		Status string `json:"status" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown status: %s", req.Status))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, models.ErrNotFound)
		return
	}

	updates := map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now(),
	}
	if err := oc.DB.Model(&order).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := oc.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
