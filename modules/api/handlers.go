package api

import (
	"context"
	"strings"

	"github.com/example/storefront/modules/cart"
	"github.com/gofiber/fiber/v2"
)

// displayTaxRate is the tax applied on top of the cart subtotal for
// display. Same policy as the checkout module; the cart store only
// reports raw totals.
const displayTaxRate = 0.10

// setupRoutes configures all HTTP routes.
func (m *Module) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	api := m.app.Group("/api/v1")

	products := api.Group("/products")
	products.Get("/", m.listProducts)
	products.Get("/top", m.topProducts)
	products.Get("/:id", m.getProduct)

	cartGroup := api.Group("/cart")
	cartGroup.Get("/", m.getCart)
	cartGroup.Delete("/", m.clearCart)
	cartGroup.Post("/items", m.addCartItem)
	cartGroup.Put("/items/:id", m.updateCartItem)
	cartGroup.Delete("/items/:id", m.deleteCartItem)
	cartGroup.Post("/open", m.openCart)
	cartGroup.Post("/close", m.closeCart)
	cartGroup.Post("/toggle", m.toggleCart)

	api.Post("/checkout", m.startCheckout)
	api.Get("/checkout", m.checkoutStatus)
}

// healthHandler handles GET /health.
func (m *Module) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// listProducts handles GET /api/v1/products.
func (m *Module) listProducts(c *fiber.Ctx) error {
	resp, err := m.catalogPort.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "catalog_unavailable",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// topProducts handles GET /api/v1/products/top.
func (m *Module) topProducts(c *fiber.Ctx) error {
	resp, err := m.catalogPort.Top(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "catalog_unavailable",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// getProduct handles GET /api/v1/products/:id.
func (m *Module) getProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Product id must be a positive integer",
		})
	}

	p, err := m.catalogPort.Get(c.Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "product_not_found",
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "catalog_unavailable",
			Message: err.Error(),
		})
	}
	return c.JSON(p)
}

// getCart handles GET /api/v1/cart.
func (m *Module) getCart(c *fiber.Ctx) error {
	resp, err := m.cartPort.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "cart_unavailable",
			Message: err.Error(),
		})
	}
	return c.JSON(toCartView(resp))
}

// addCartItem handles POST /api/v1/cart/items. The product record is
// fetched from the catalog and handed to the cart, mirroring the product
// card add-to-cart flow.
func (m *Module) addCartItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if req.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Product id is required",
		})
	}

	p, err := m.catalogPort.Get(c.Context(), req.ProductID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "product_not_found",
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "catalog_unavailable",
			Message: err.Error(),
		})
	}

	resp, err := m.cartPort.AddItem(c.Context(), *p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "add_failed",
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// updateCartItem handles PUT /api/v1/cart/items/:id. A quantity of zero
// or less removes the item.
func (m *Module) updateCartItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Product id must be a positive integer",
		})
	}

	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.cartPort.UpdateQuantity(c.Context(), id, req.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "update_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// deleteCartItem handles DELETE /api/v1/cart/items/:id.
func (m *Module) deleteCartItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Product id must be a positive integer",
		})
	}

	resp, err := m.cartPort.RemoveItem(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "remove_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// clearCart handles DELETE /api/v1/cart.
func (m *Module) clearCart(c *fiber.Ctx) error {
	resp, err := m.cartPort.Clear(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "clear_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// openCart handles POST /api/v1/cart/open.
func (m *Module) openCart(c *fiber.Ctx) error {
	return m.sidebar(c, m.cartPort.Open)
}

// closeCart handles POST /api/v1/cart/close.
func (m *Module) closeCart(c *fiber.Ctx) error {
	return m.sidebar(c, m.cartPort.Close)
}

// toggleCart handles POST /api/v1/cart/toggle.
func (m *Module) toggleCart(c *fiber.Ctx) error {
	return m.sidebar(c, m.cartPort.Toggle)
}

// startCheckout handles POST /api/v1/checkout.
func (m *Module) startCheckout(c *fiber.Ctx) error {
	order, err := m.checkoutPort.Start(c.Context())
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "in progress"):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Error:   "checkout_in_progress",
				Message: err.Error(),
			})
		case strings.Contains(err.Error(), "empty"):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "cart_empty",
				Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "checkout_failed",
				Message: err.Error(),
			})
		}
	}
	return c.JSON(order)
}

// checkoutStatus handles GET /api/v1/checkout.
func (m *Module) checkoutStatus(c *fiber.Ctx) error {
	status, err := m.checkoutPort.Status(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "status_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(status)
}

func (m *Module) sidebar(c *fiber.Ctx, op func(ctx context.Context) (*cart.SidebarResponse, error)) error {
	resp, err := op(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "sidebar_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

// toCartView applies the display tax policy to a cart response.
func toCartView(resp *cart.CartResponse) CartViewResponse {
	subtotal := resp.TotalPrice
	tax := subtotal * displayTaxRate
	return CartViewResponse{
		Items:      resp.Items,
		IsOpen:     resp.IsOpen,
		TotalItems: resp.TotalItems,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      subtotal + tax,
	}
}
