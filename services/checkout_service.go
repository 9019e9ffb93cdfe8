package services

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/south-indian-kitchen/backend/config"
	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/utils"
)

// Checkout attempt states. Payment failure, order-creation failure and
// order-created are terminal.
type CheckoutState string

const (
	StateIdle                CheckoutState = "idle"
	StateProcessingPayment   CheckoutState = "processing_payment"
	StatePaymentFailed       CheckoutState = "payment_failed"
	StatePaymentSucceeded    CheckoutState = "payment_succeeded"
	StateOrderCreationFailed CheckoutState = "order_creation_failed"
	StateOrderCreated        CheckoutState = "order_created"
)

// OrderCreator records a completed checkout. Like the payment call it may
// take a while; items are already a snapshot by the time it runs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, items []models.CartItem, total float64, customerName, customerEmail string) (*models.Order, error)
}

// Attempt is the record of one pass through the checkout state machine.
type Attempt struct {
	State         CheckoutState
	TransactionID string
	Order         *models.Order
	Err           error
}

// CheckoutService sequences payment authorization then order creation.
type CheckoutService struct {
	Gateway PaymentGateway
	Orders  OrderCreator
}

func NewCheckoutService(gateway PaymentGateway, orders OrderCreator) *CheckoutService {
	return &CheckoutService{Gateway: gateway, Orders: orders}
}

// Checkout runs one attempt and reports it as (order, error). The cart is
// not touched here: on success the caller clears its stored cart, on
// payment failure it keeps it for a retry.
func (s *CheckoutService) Checkout(ctx context.Context, items []models.CartItem, customerName, customerEmail string) (*models.Order, error) {
	attempt := s.Process(ctx, items, customerName, customerEmail)
	return attempt.Order, attempt.Err
}

// Process runs the state machine and returns the full attempt record.
func (s *CheckoutService) Process(ctx context.Context, items []models.CartItem, customerName, customerEmail string) *Attempt {
	attempt := &Attempt{State: StateIdle}

	// An empty cart is rejected before any transition or external call.
	if len(items) == 0 {
		attempt.Err = models.ErrEmptyCart
		return attempt
	}

	total := CartTotal(items)

	attempt.State = StateProcessingPayment
	result, err := s.Gateway.ProcessPayment(ctx, total, customerEmail)
	if err != nil {
		attempt.State = StatePaymentFailed
		attempt.Err = models.ErrPaymentDeclined
		utils.ErrorLogger.Printf("checkout: payment declined for %s (amount %.2f): %v", customerEmail, total, err)
		return attempt
	}
	attempt.State = StatePaymentSucceeded
	attempt.TransactionID = result.TransactionID

	// Snapshot before order creation so later cart or menu mutations
	// cannot reach into the order.
	snapshot := snapshotItems(items)

	order, err := s.Orders.CreateOrder(ctx, snapshot, total, customerName, customerEmail)
	if err != nil {
		attempt.State = StateOrderCreationFailed
		attempt.Err = models.ErrOrderCreationFailed
		// The customer has been charged (txn kept on the attempt) but no
		// order exists. There is no compensating refund step.
		utils.ErrorLogger.Printf("checkout: order creation failed after payment %s for %s: %v", result.TransactionID, customerEmail, err)
		return attempt
	}

	attempt.State = StateOrderCreated
	attempt.Order = order
	utils.InfoLogger.Printf("checkout: order %s created for %s (total %.2f, txn %s)", order.ID, customerEmail, total, result.TransactionID)
	return attempt
}

func snapshotItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// GenerateOrderID keeps the original id shape: a millisecond timestamp
// plus a random suffix so concurrent checkouts do not collide.
func GenerateOrderID() string {
	return fmt.Sprintf("order_%d_%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// GormOrderCreator writes orders to the registry with a simulated
// processing latency, status pending and frozen line snapshots.
type GormOrderCreator struct {
	DB    *gorm.DB
	Delay time.Duration
}

// NewGormOrderCreator builds the creator with latency taken from
// ORDER_DELAY_MS (default 1000ms).
func NewGormOrderCreator(db *gorm.DB) *GormOrderCreator {
	delayMS, err := strconv.Atoi(config.Getenv("ORDER_DELAY_MS", "1000"))
	if err != nil || delayMS < 0 {
		delayMS = 1000
	}
	return &GormOrderCreator{DB: db, Delay: time.Duration(delayMS) * time.Millisecond}
}

func (c *GormOrderCreator) CreateOrder(ctx context.Context, items []models.CartItem, total float64, customerName, customerEmail string) (*models.Order, error) {
	if err := sleepCtx(ctx, c.Delay); err != nil {
		return nil, err
	}

	now := time.Now()
	order := models.Order{
		ID:            GenerateOrderID(),
		TotalAmount:   total,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Status:        models.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			DishID:      item.Dish.ID,
			Name:        item.Dish.Name,
			Description: item.Dish.Description,
			Price:       item.Dish.Price,
			Image:       item.Dish.Image,
			Category:    item.Dish.Category,
			Quantity:    item.Quantity,
		})
	}

	if err := c.DB.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
