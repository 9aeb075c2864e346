package services

import (
	"sort"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CatalogService answers storefront listing queries. Filtering and sorting
// are pure functions over the repository snapshot; the service itself
// holds no state beyond the repository handle.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// Search filters the catalog by the given criteria and orders the result
// by the sort key. An empty catalog or criteria that match nothing yield
// an empty slice, never an error.
func (s *CatalogService) Search(criteria models.FilterCriteria, key models.SortKey) ([]models.Product, error) {
	products, err := s.repo.Products()
	if err != nil {
		return nil, err
	}
	return SortProducts(FilterProducts(products, criteria), key), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.ProductByID(id)
}

// ListCategories retrieves all catalog categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.repo.Categories()
}

// ListBrands returns the distinct brands in the catalog, sorted by name.
func (s *CatalogService) ListBrands() ([]string, error) {
	products, err := s.repo.Products()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	brands := make([]string, 0)
	for _, p := range products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	sort.Strings(brands)
	return brands, nil
}

// FilterProducts narrows the product list to those matching every
// constraint in the criteria. Relative order of survivors is preserved.
func FilterProducts(products []models.Product, c models.FilterCriteria) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesCriteria(p, c) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesCriteria(p models.Product, c models.FilterCriteria) bool {
	if !matchesSearch(p, c.SearchText) {
		return false
	}
	if len(c.Categories) > 0 && !containsString(c.Categories, p.Category) {
		return false
	}
	if len(c.Brands) > 0 && !containsString(c.Brands, p.Brand) {
		return false
	}
	if !c.PriceRange.Contains(p.Price) {
		return false
	}
	if p.Rating < c.MinRating {
		return false
	}
	// A "featured" product is one on discount with a rating of 4.5 or
	// better; both are required.
	if c.FeaturedOnly && (!p.Discounted() || p.Rating < 4.5) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match across name,
// description and brand. An empty search text matches everything.
func matchesSearch(p models.Product, searchText string) bool {
	if searchText == "" {
		return true
	}
	needle := strings.ToLower(searchText)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle)
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// SortProducts orders the list by the given key. The sort is stable, so
// products that compare equal keep their filtered order, and the
// relevance key returns the list as-is. The input slice is not modified.
func SortProducts(products []models.Product, key models.SortKey) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case models.SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case models.SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	case models.SortPopularityDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ReviewCount > sorted[j].ReviewCount
		})
	}
	return sorted
}
