package handler

import (
	"github.com/gin-gonic/gin"

	cartapp "github.com/storefront/backend/internal/application/cart"
)

// CartHandler manages the session-scoped shopping cart
type CartHandler struct {
	BaseHandler
	cartService *cartapp.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:key", h.UpdateQuantity)
		cart.DELETE("/items/:key", h.RemoveItem)
		cart.DELETE("", h.Clear)
	}
}

// Get returns the current cart contents
func (h *CartHandler) Get(c *gin.Context) {
	sessionKey := getCartSession(c)
	if sessionKey == "" {
		h.BadRequest(c, "Cart session key is required")
		return
	}
	resp, err := h.cartService.GetCart(c.Request.Context(), sessionKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem adds a product variant to the cart, merging quantities for an
// existing line
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionKey := getCartSession(c)
	if sessionKey == "" {
		h.BadRequest(c, "Cart session key is required")
		return
	}
	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.cartService.AddItem(c.Request.Context(), sessionKey, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateQuantity sets the quantity of a cart line; zero removes it
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sessionKey := getCartSession(c)
	if sessionKey == "" {
		h.BadRequest(c, "Cart session key is required")
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionKey, c.Param("key"), req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem removes a cart line. Removing an absent line is a no-op.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionKey := getCartSession(c)
	if sessionKey == "" {
		h.BadRequest(c, "Cart session key is required")
		return
	}
	resp, err := h.cartService.RemoveItem(c.Request.Context(), sessionKey, c.Param("key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	sessionKey := getCartSession(c)
	if sessionKey == "" {
		h.BadRequest(c, "Cart session key is required")
		return
	}
	if err := h.cartService.Clear(c.Request.Context(), sessionKey); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"cleared": true})
}
