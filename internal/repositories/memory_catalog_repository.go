package repositories

import (
	"fmt"

	"storefront/internal/models"
)

// MemoryCatalogRepository is an in-memory implementation of
// CatalogRepository. It is seeded once at construction and read-only
// afterwards, which is all the storefront needs from its catalog.
type MemoryCatalogRepository struct {
	products   []models.Product
	categories []models.Category
	byID       map[string]int
}

// NewMemoryCatalogRepository creates a repository over the given catalog.
// The slices are copied, so later mutation by the caller cannot leak in.
func NewMemoryCatalogRepository(products []models.Product, categories []models.Category) *MemoryCatalogRepository {
	r := &MemoryCatalogRepository{
		products:   make([]models.Product, len(products)),
		categories: make([]models.Category, len(categories)),
		byID:       make(map[string]int, len(products)),
	}
	copy(r.products, products)
	copy(r.categories, categories)
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r
}

// Products returns the full catalog in seed order.
func (r *MemoryCatalogRepository) Products() ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// ProductByID returns a single product by its ID.
func (r *MemoryCatalogRepository) ProductByID(id string) (*models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found", id)
	}
	product := r.products[i]
	return &product, nil
}

// Categories returns all categories in seed order.
func (r *MemoryCatalogRepository) Categories() ([]models.Category, error) {
	categories := make([]models.Category, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}
