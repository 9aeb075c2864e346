package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"storefront/internal/models"
	"storefront/internal/pricing"
	"storefront/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes storefront events to the message broker.
// pkg/rabbitmq.Client satisfies it; tests substitute a mock.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CheckoutService turns a session's cart into a placed order: it prices
// the lines, stores the order, and announces it on the broker.
type CheckoutService struct {
	orderRepo repositories.OrderRepository
	cart      *CartService
	publisher EventPublisher
	rates     pricing.Config
}

// NewCheckoutService creates a new CheckoutService. The publisher may be
// nil, in which case order events are skipped.
func NewCheckoutService(orderRepo repositories.OrderRepository, cart *CartService, publisher EventPublisher, rates pricing.Config) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		cart:      cart,
		publisher: publisher,
		rates:     rates,
	}
}

// Totals prices the session's current cart.
func (s *CheckoutService) Totals(sessionID string) pricing.Totals {
	state := s.cart.Snapshot(sessionID)
	return pricing.ComputeTotals(state.Lines, s.rates)
}

// PlaceOrder creates an order from the session's cart and clears the cart
// lines. An empty cart cannot be checked out.
func (s *CheckoutService) PlaceOrder(sessionID string, shipping models.ShippingInfo) (*models.Order, error) {
	state := s.cart.Snapshot(sessionID)
	if len(state.Lines) == 0 {
		return nil, fmt.Errorf("cart for session %s is empty", sessionID)
	}

	totals := pricing.ComputeTotals(state.Lines, s.rates)

	items := make([]models.OrderItem, 0, len(state.Lines))
	for _, line := range state.Lines {
		items = append(items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price, // unit price at order time
		})
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Items:     items,
		Shipping:  shipping,
		Subtotal:  totals.Subtotal,
		Delivery:  totals.Shipping,
		Tax:       totals.Tax,
		Total:     totals.Total,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.publishOrderCreated(order)

	// The order is placed; the cart starts over. Visibility is left as
	// the user had it.
	s.cart.Clear(sessionID)

	return order, nil
}

// GetOrderByID retrieves a placed order.
func (s *CheckoutService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// ListOrders returns the orders placed by one session, newest first.
func (s *CheckoutService) ListOrders(sessionID string) ([]models.Order, error) {
	all, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0)
	for _, order := range all {
		if order.SessionID == sessionID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// ConfirmOrder marks a pending order as confirmed. The fulfillment
// consumer calls this when the order event comes back around.
func (s *CheckoutService) ConfirmOrder(id string) error {
	if err := s.orderRepo.UpdateStatus(id, "confirmed"); err != nil {
		return fmt.Errorf("failed to confirm order %s: %w", id, err)
	}
	return nil
}

func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not configured. Skipping order event.")
		return
	}

	event := map[string]interface{}{
		"orderID":   order.ID,
		"sessionID": order.SessionID,
		"status":    order.Status,
		"total":     order.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}

	if err := s.publisher.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Published order created event for order %s", order.ID)
	}
}
