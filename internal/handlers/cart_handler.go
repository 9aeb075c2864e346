package handlers

import (
	"log"
	"strings"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/toggle", h.HandleToggleCart)
	cartRoutes.Post("/open", h.HandleOpenCart)
	cartRoutes.Post("/close", h.HandleCloseCart)
}

// cartResponse is the wire shape of a cart snapshot. The totals are
// recomputed from the lines on every response.
type cartResponse struct {
	Items      []models.CartLine `json:"items"`
	IsOpen     bool              `json:"isOpen"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

func newCartResponse(state models.CartState) cartResponse {
	items := state.Lines
	if items == nil {
		items = []models.CartLine{}
	}
	return cartResponse{
		Items:      items,
		IsOpen:     state.IsOpen,
		TotalItems: state.TotalItems(),
		TotalPrice: state.TotalPrice(),
	}
}

// HandleGetCart returns the session's cart snapshot with totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	state := h.service.Snapshot(middleware.SessionID(c))
	return c.JSON(newCartResponse(state))
}

// HandleAddItem adds one unit of a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}

	state, err := h.service.AddProduct(middleware.SessionID(c), req.ProductID)
	if err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add product to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(newCartResponse(state))
}

// HandleUpdateQuantity sets a line's quantity. A quantity of zero or
// below removes the line, matching the cart's own transition rule.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update quantity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	state := h.service.SetQuantity(middleware.SessionID(c), c.Params("productId"), req.Quantity)
	return c.JSON(newCartResponse(state))
}

// HandleRemoveItem deletes a product's line from the cart. Removing an
// absent product is not an error; the unchanged cart comes back.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	state := h.service.RemoveProduct(middleware.SessionID(c), c.Params("productId"))
	return c.JSON(newCartResponse(state))
}

// HandleClearCart empties the cart lines.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	state := h.service.Clear(middleware.SessionID(c))
	return c.JSON(newCartResponse(state))
}

// HandleToggleCart flips the cart sidebar visibility.
func (h *CartHandler) HandleToggleCart(c *fiber.Ctx) error {
	state := h.service.Dispatch(middleware.SessionID(c), models.ToggleCart{})
	return c.JSON(newCartResponse(state))
}

// HandleOpenCart opens the cart sidebar.
func (h *CartHandler) HandleOpenCart(c *fiber.Ctx) error {
	state := h.service.Dispatch(middleware.SessionID(c), models.OpenCart{})
	return c.JSON(newCartResponse(state))
}

// HandleCloseCart closes the cart sidebar.
func (h *CartHandler) HandleCloseCart(c *fiber.Ctx) error {
	state := h.service.Dispatch(middleware.SessionID(c), models.CloseCart{})
	return c.JSON(newCartResponse(state))
}
