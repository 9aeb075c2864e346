package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"storefront/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := loadConfig()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "memory", cfg.CatalogBackend)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.InDelta(t, 50.00, cfg.Rates.FreeShippingThreshold, 0.0001)
	assert.InDelta(t, 9.99, cfg.Rates.ShippingFee, 0.0001)
	assert.InDelta(t, 0.08, cfg.Rates.TaxRate, 0.0001)
}

func TestNewCatalogRepository_Memory(t *testing.T) {
	repo, err := newCatalogRepository(appConfig{CatalogBackend: "memory"})
	assert.NoError(t, err)

	products, err := repo.Products()
	assert.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestNewCatalogRepository_GormSQLite(t *testing.T) {
	cfg := appConfig{
		CatalogBackend: "gorm",
		DBDriver:       "sqlite",
		DBDSN:          "file::memory:?cache=shared",
	}
	repo, err := newCatalogRepository(cfg)
	assert.NoError(t, err)

	products, err := repo.Products()
	assert.NoError(t, err)
	assert.Len(t, products, 8)

	product, err := repo.ProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "Wireless Bluetooth Headphones", product.Name)
	assert.Equal(t, []string{"Active Noise Cancellation", "30-hour battery", "Quick charge", "Bluetooth 5.0"}, product.Features)

	categories, err := repo.Categories()
	assert.NoError(t, err)
	assert.Len(t, categories, 6)
}

func TestNewCatalogRepository_UnknownBackend(t *testing.T) {
	_, err := newCatalogRepository(appConfig{CatalogBackend: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestBuildAppHealth(t *testing.T) {
	catalogRepo, err := newCatalogRepository(appConfig{CatalogBackend: "memory"})
	assert.NoError(t, err)

	cfg := loadConfig()
	app, _ := buildApp(catalogRepo, repositories.NewMemoryOrderRepository(), nil, cfg.Rates, "test_secret")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "healthy", body["status"])
}
