package repositories

import (
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM-backed implementation of
// CatalogRepository for deployments that keep the catalog in SQLite or
// PostgreSQL instead of process memory.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// Migrate creates the catalog tables if they do not exist yet.
func (r *GORMCatalogRepository) Migrate() error {
	if err := r.db.AutoMigrate(&models.Product{}, &models.Category{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}

// Seed inserts the given catalog, replacing nothing: rows that already
// exist are left alone so restarts do not duplicate the catalog.
func (r *GORMCatalogRepository) Seed(products []models.Product, categories []models.Category) error {
	for i := range products {
		res := r.db.FirstOrCreate(&products[i], "id = ?", products[i].ID)
		if res.Error != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].ID, res.Error)
		}
	}
	for i := range categories {
		res := r.db.FirstOrCreate(&categories[i], "id = ?", categories[i].ID)
		if res.Error != nil {
			return fmt.Errorf("failed to seed category %s: %w", categories[i].ID, res.Error)
		}
	}
	return nil
}

// Products retrieves the full catalog ordered by ID, so result order is
// stable across calls.
func (r *GORMCatalogRepository) Products() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// ProductByID retrieves a single product by its ID.
func (r *GORMCatalogRepository) ProductByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Categories retrieves all categories ordered by ID.
func (r *GORMCatalogRepository) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}
