package repositories

import (
	"storefront/internal/models"
)

// CatalogRepository defines read-only access to the product catalog.
// Implementations must return products in a stable order: the catalog's
// own order is what "relevance" sorting preserves.
type CatalogRepository interface {
	Products() ([]models.Product, error)
	ProductByID(id string) (*models.Product, error)
	Categories() ([]models.Category, error)
}
