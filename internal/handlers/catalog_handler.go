package handlers

import (
	"log"
	"strings"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for product listings.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Get("/categories", h.HandleListCategories)
	router.Get("/brands", h.HandleListBrands)
}

// HandleListProducts returns the catalog filtered and sorted per the
// query string. With no parameters it returns the whole catalog in
// relevance (catalog) order.
//
// Query parameters: search, categories, brands (comma-separated),
// min_price, max_price, min_rating, featured, sort.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	criteria := models.FilterCriteria{
		SearchText: c.Query("search"),
		Categories: splitList(c.Query("categories")),
		Brands:     splitList(c.Query("brands")),
		PriceRange: models.PriceRange{
			Min: c.QueryFloat("min_price", 0),
			Max: c.QueryFloat("max_price", 0),
		},
		MinRating:    c.QueryFloat("min_rating", 0),
		FeaturedOnly: c.QueryBool("featured", false),
	}
	sortKey := models.ParseSortKey(c.Query("sort"))

	products, err := h.service.Search(criteria, sortKey)
	if err != nil {
		log.Printf("Error searching catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// HandleGetProduct retrieves a single product by its ID.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleListCategories returns all catalog categories.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleListBrands returns the distinct brands in the catalog.
func (h *CatalogHandler) HandleListBrands(c *fiber.Ctx) error {
	brands, err := h.service.ListBrands()
	if err != nil {
		log.Printf("Error getting brands: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve brands",
			"error":   err.Error(),
		})
	}
	return c.JSON(brands)
}

// splitList turns a comma-separated query value into a cleaned slice.
// Empty input yields nil, which the filter treats as unconstrained.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}
