package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutapp "github.com/storefront/backend/internal/application/checkout"
)

// CheckoutHandler exposes order submission and the payment-return
// reconciliation endpoint the confirmation page polls
type CheckoutHandler struct {
	BaseHandler
	coordinator *checkoutapp.Coordinator
	reconciler  *checkoutapp.Reconciler
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(coordinator *checkoutapp.Coordinator, reconciler *checkoutapp.Reconciler) *CheckoutHandler {
	return &CheckoutHandler{
		coordinator: coordinator,
		reconciler:  reconciler,
	}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")
	{
		checkout.POST("/submit", h.Submit)
		checkout.GET("/return", h.PaymentReturn)
	}
}

// Submit places an order from the current cart. Cash-on-delivery orders
// are created immediately; online payments open a hosted checkout
// session and return its token.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionKey := getCartSession(c)
	if sessionKey == "" {
		h.BadRequest(c, "Cart session key is required")
		return
	}
	var req checkoutapp.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.coordinator.Submit(c.Request.Context(), sessionKey, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// PaymentReturn resolves the browser's return from checkout. It accepts
// either orderId (cash on delivery) or cf_order_id (online payment) and
// always answers 200: the outcome payload tells the confirmation page
// whether to render success or the contact-support state.
func (h *CheckoutHandler) PaymentReturn(c *gin.Context) {
	sessionKey := getCartSession(c)
	outcome := h.reconciler.Resolve(
		c.Request.Context(),
		sessionKey,
		c.Query("orderId"),
		c.Query("cf_order_id"),
	)
	c.JSON(http.StatusOK, outcome)
}
