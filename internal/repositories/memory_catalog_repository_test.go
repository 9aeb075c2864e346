package repositories_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCatalogRepository_PreservesSeedOrder(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository(
		repositories.DefaultProducts(),
		repositories.DefaultCategories(),
	)

	products, err := repo.Products()
	assert.NoError(t, err)
	assert.Len(t, products, 8)
	for i, p := range products {
		assert.Equal(t, repositories.DefaultProducts()[i].ID, p.ID)
	}

	categories, err := repo.Categories()
	assert.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, "Electronics", categories[0].Name)
}

func TestMemoryCatalogRepository_ProductByID(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository(
		repositories.DefaultProducts(),
		repositories.DefaultCategories(),
	)

	product, err := repo.ProductByID("5")
	assert.NoError(t, err)
	assert.Equal(t, "Running Shoes", product.Name)

	product, err = repo.ProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")
}

func TestMemoryCatalogRepository_IsolatedFromCallers(t *testing.T) {
	seed := []models.Product{
		{ID: "a", Name: "Widget One", Price: 1.00},
		{ID: "b", Name: "Widget Two", Price: 2.00},
	}
	repo := repositories.NewMemoryCatalogRepository(seed, nil)

	// Mutating the seed after construction must not reach the repository.
	seed[0].Name = "Changed"
	product, err := repo.ProductByID("a")
	assert.NoError(t, err)
	assert.Equal(t, "Widget One", product.Name)

	// Mutating a returned slice must not reach the repository either.
	products, err := repo.Products()
	assert.NoError(t, err)
	products[1].Name = "Also Changed"

	again, err := repo.Products()
	assert.NoError(t, err)
	assert.Equal(t, "Widget Two", again[1].Name)
}
