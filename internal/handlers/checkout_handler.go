package handlers

import (
	"fmt"
	"log"
	"strings"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for checkout and placed orders.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/checkout/totals", h.HandleGetTotals)
	router.Post("/checkout", h.HandlePlaceOrder)
	router.Get("/orders", h.HandleListOrders)
	router.Get("/orders/:id", h.HandleGetOrder)
}

// HandleGetTotals prices the session's current cart.
func (h *CheckoutHandler) HandleGetTotals(c *fiber.Ctx) error {
	totals := h.service.Totals(middleware.SessionID(c))
	return c.JSON(totals)
}

// HandlePlaceOrder validates the shipping form, places the order and
// returns it. The cart lines are cleared as part of a successful order.
func (h *CheckoutHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var shipping models.ShippingInfo
	if err := c.BodyParser(&shipping); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(shipping); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Please fill in all shipping information fields",
			"errors":  errorMessages,
		})
	}

	order, err := h.service.PlaceOrder(middleware.SessionID(c), shipping)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		if strings.Contains(err.Error(), "is empty") {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Cannot check out an empty cart",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListOrders returns the session's own placed orders, newest first.
func (h *CheckoutHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(middleware.SessionID(c))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrder retrieves a placed order by its ID.
func (h *CheckoutHandler) HandleGetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}
