package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartService() *services.CartService {
	repo := repositories.NewMemoryCatalogRepository(
		repositories.DefaultProducts(),
		repositories.DefaultCategories(),
	)
	return services.NewCartService(repo)
}

func TestCartService_AddProduct(t *testing.T) {
	service := newCartService()

	state, err := service.AddProduct("session-a", "1")
	assert.NoError(t, err)
	assert.Len(t, state.Lines, 1)
	assert.Equal(t, "Wireless Bluetooth Headphones", state.Lines[0].Product.Name)
	assert.Equal(t, 1, state.Lines[0].Quantity)

	state, err = service.AddProduct("session-a", "1")
	assert.NoError(t, err)
	assert.Len(t, state.Lines, 1)
	assert.Equal(t, 2, state.Lines[0].Quantity)
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	service := newCartService()

	state, err := service.AddProduct("session-a", "no-such-product")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, state.Lines, "a failed add must leave the cart unchanged")
}

func TestCartService_SessionsAreIndependent(t *testing.T) {
	service := newCartService()

	_, err := service.AddProduct("session-a", "1")
	assert.NoError(t, err)
	_, err = service.AddProduct("session-b", "4")
	assert.NoError(t, err)

	stateA := service.Snapshot("session-a")
	stateB := service.Snapshot("session-b")

	assert.Len(t, stateA.Lines, 1)
	assert.Equal(t, "1", stateA.Lines[0].Product.ID)
	assert.Len(t, stateB.Lines, 1)
	assert.Equal(t, "4", stateB.Lines[0].Product.ID)

	// An untouched session gets the empty, closed cart.
	stateC := service.Snapshot("session-c")
	assert.Empty(t, stateC.Lines)
	assert.False(t, stateC.IsOpen)
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	service := newCartService()

	_, err := service.AddProduct("s", "1")
	assert.NoError(t, err)
	_, err = service.AddProduct("s", "4")
	assert.NoError(t, err)

	state := service.SetQuantity("s", "1", 3)
	assert.Equal(t, 3, state.Lines[0].Quantity)
	assert.Equal(t, 4, state.TotalItems())

	state = service.SetQuantity("s", "4", 0)
	assert.Len(t, state.Lines, 1)
	assert.Equal(t, "1", state.Lines[0].Product.ID)

	state = service.RemoveProduct("s", "1")
	assert.Empty(t, state.Lines)
}

func TestCartService_ClearKeepsVisibility(t *testing.T) {
	service := newCartService()

	_, err := service.AddProduct("s", "1")
	assert.NoError(t, err)
	state := service.Dispatch("s", models.OpenCart{})
	assert.True(t, state.IsOpen)

	state = service.Clear("s")
	assert.Empty(t, state.Lines)
	assert.True(t, state.IsOpen)
}
