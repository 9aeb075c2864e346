package models

// Product represents a single item in the store catalog.
// The catalog is loaded once at startup and is read-only afterwards.
type Product struct {
	ID             string            `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	Name           string            `json:"name" validate:"required,min=3,max=100"`
	Description    string            `json:"description" validate:"omitempty,max=500"`
	Price          float64           `json:"price" validate:"required,gt=0"`
	OriginalPrice  float64           `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Category       string            `json:"category" validate:"required"`
	Brand          string            `json:"brand" validate:"required"`
	Rating         float64           `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount    int               `json:"reviewCount" validate:"gte=0"`
	InStock        bool              `json:"inStock"`
	Images         []string          `json:"images" gorm:"serializer:json" validate:"required,min=1"`
	Features       []string          `json:"features,omitempty" gorm:"serializer:json"`
	Specifications map[string]string `json:"specifications,omitempty" gorm:"serializer:json"`
}

// Discounted reports whether the product carries a reduced price.
func (p Product) Discounted() bool {
	return p.OriginalPrice > 0
}

// Category groups products for storefront navigation. ProductCount is
// display metadata maintained by the catalog owner, not derived from the
// product list.
type Category struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string `json:"name"`
	Slug         string `json:"slug" gorm:"uniqueIndex;type:varchar(100)"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"productCount"`
}
