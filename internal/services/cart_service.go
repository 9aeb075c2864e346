package services

import (
	"fmt"
	"sync"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService owns the cart state for every active session. Each session
// maps to one CartState value; a dispatch replaces the whole value with
// the result of models.CartState.Apply, so readers always observe a
// consistent snapshot and two sessions can never see each other's cart.
type CartService struct {
	catalog repositories.CatalogRepository
	carts   map[string]models.CartState
	mu      sync.RWMutex
}

// NewCartService creates a new CartService backed by the given catalog.
func NewCartService(catalog repositories.CatalogRepository) *CartService {
	return &CartService{
		catalog: catalog,
		carts:   make(map[string]models.CartState),
	}
}

// Snapshot returns the session's current cart. A session that has not
// touched its cart yet gets the empty, closed cart.
func (s *CartService) Snapshot(sessionID string) models.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[sessionID]
}

// Dispatch applies one action to the session's cart and returns the new
// state.
func (s *CartService) Dispatch(sessionID string, action models.CartAction) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.carts[sessionID].Apply(action)
	s.carts[sessionID] = next
	return next
}

// AddProduct resolves the product ID against the catalog and adds it to
// the session's cart. Unknown product IDs are the only error path.
func (s *CartService) AddProduct(sessionID, productID string) (models.CartState, error) {
	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		return s.Snapshot(sessionID), fmt.Errorf("cannot add to cart: %w", err)
	}
	return s.Dispatch(sessionID, models.AddItem{Product: *product}), nil
}

// RemoveProduct deletes the product's line from the session's cart.
// Removing a product that is not in the cart leaves it unchanged.
func (s *CartService) RemoveProduct(sessionID, productID string) models.CartState {
	return s.Dispatch(sessionID, models.RemoveItem{ProductID: productID})
}

// SetQuantity sets the line's quantity; zero or below removes the line.
func (s *CartService) SetQuantity(sessionID, productID string, quantity int) models.CartState {
	return s.Dispatch(sessionID, models.UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// Clear empties the session's cart lines, leaving visibility alone.
func (s *CartService) Clear(sessionID string) models.CartState {
	return s.Dispatch(sessionID, models.ClearCart{})
}
