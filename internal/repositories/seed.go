package repositories

import "storefront/internal/models"

// DefaultCategories returns the storefront's category navigation seed.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Electronics", Slug: "electronics", Image: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=300&h=200&fit=crop", ProductCount: 156},
		{ID: "2", Name: "Clothing", Slug: "clothing", Image: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=300&h=200&fit=crop", ProductCount: 234},
		{ID: "3", Name: "Home & Garden", Slug: "home-garden", Image: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=200&fit=crop", ProductCount: 89},
		{ID: "4", Name: "Sports", Slug: "sports", Image: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop", ProductCount: 67},
		{ID: "5", Name: "Books", Slug: "books", Image: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=200&fit=crop", ProductCount: 123},
		{ID: "6", Name: "Beauty", Slug: "beauty", Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=300&h=200&fit=crop", ProductCount: 78},
	}
}

// DefaultProducts returns the storefront's product catalog seed. Order
// matters: it is the "relevance" order for unsorted listings.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Wireless Bluetooth Headphones",
			Description:   "Premium wireless headphones with active noise cancellation and 30-hour battery life.",
			Price:         199.99,
			OriginalPrice: 249.99,
			Category:      "Electronics",
			Brand:         "AudioTech",
			Rating:        4.5,
			ReviewCount:   128,
			InStock:       true,
			Images: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
				"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=400&h=300&fit=crop",
			},
			Features: []string{"Active Noise Cancellation", "30-hour battery", "Quick charge", "Bluetooth 5.0"},
			Specifications: map[string]string{
				"Battery Life":  "30 hours",
				"Charging Time": "2 hours",
				"Weight":        "250g",
				"Connectivity":  "Bluetooth 5.0",
			},
		},
		{
			ID:          "2",
			Name:        "Smartphone 128GB",
			Description: "Latest smartphone with advanced camera system and lightning-fast performance.",
			Price:       699.99,
			Category:    "Electronics",
			Brand:       "TechPro",
			Rating:      4.7,
			ReviewCount: 256,
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop",
			},
			Features: []string{"128GB Storage", "Triple Camera", "5G Ready", "Wireless Charging"},
			Specifications: map[string]string{
				"Storage": "128GB",
				"RAM":     "8GB",
				"Display": "6.1\"",
				"Camera":  "48MP Triple Camera",
			},
		},
		{
			ID:            "3",
			Name:          "Laptop Backpack",
			Description:   "Professional laptop backpack with USB charging port and water-resistant material.",
			Price:         49.99,
			OriginalPrice: 79.99,
			Category:      "Electronics",
			Brand:         "UrbanCarry",
			Rating:        4.3,
			ReviewCount:   89,
			InStock:       true,
			Images: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=300&fit=crop",
			},
			Features: []string{"USB Charging Port", "Water Resistant", "Laptop Compartment", "Anti-theft Design"},
		},
		{
			ID:          "4",
			Name:        "Cotton T-Shirt",
			Description: "Comfortable 100% cotton t-shirt perfect for everyday wear.",
			Price:       19.99,
			Category:    "Clothing",
			Brand:       "ComfortWear",
			Rating:      4.2,
			ReviewCount: 45,
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop",
			},
			Features: []string{"100% Cotton", "Machine Washable", "Pre-shrunk", "Various Colors"},
		},
		{
			ID:          "5",
			Name:        "Running Shoes",
			Description: "Lightweight running shoes with advanced cushioning technology.",
			Price:       129.99,
			Category:    "Sports",
			Brand:       "SportMax",
			Rating:      4.6,
			ReviewCount: 167,
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop",
			},
			Features: []string{"Lightweight Design", "Advanced Cushioning", "Breathable Mesh", "Durable Sole"},
		},
		{
			ID:            "6",
			Name:          "Coffee Maker",
			Description:   "Programmable coffee maker with built-in grinder and thermal carafe.",
			Price:         159.99,
			OriginalPrice: 199.99,
			Category:      "Home & Garden",
			Brand:         "BrewMaster",
			Rating:        4.4,
			ReviewCount:   92,
			InStock:       true,
			Images: []string{
				"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=300&fit=crop",
			},
			Features: []string{"Built-in Grinder", "Programmable", "Thermal Carafe", "12-cup Capacity"},
		},
		{
			ID:          "7",
			Name:        "JavaScript Programming Book",
			Description: "Comprehensive guide to modern JavaScript programming techniques.",
			Price:       39.99,
			Category:    "Books",
			Brand:       "TechBooks",
			Rating:      4.8,
			ReviewCount: 234,
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400&h=300&fit=crop",
			},
			Features: []string{"Latest ES6+ Features", "Practical Examples", "500+ Pages", "Beginner Friendly"},
		},
		{
			ID:          "8",
			Name:        "Skincare Set",
			Description: "Complete skincare routine set with cleanser, toner, and moisturizer.",
			Price:       89.99,
			Category:    "Beauty",
			Brand:       "GlowUp",
			Rating:      4.5,
			ReviewCount: 156,
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=400&h=300&fit=crop",
			},
			Features: []string{"All Skin Types", "Natural Ingredients", "3-Step Routine", "Cruelty Free"},
		},
	}
}
