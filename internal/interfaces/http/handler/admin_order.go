package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/storefront/backend/internal/application/order"
)

// AdminOrderHandler exposes the back-office order operations
type AdminOrderHandler struct {
	BaseHandler
	orderService *orderapp.AdminService
	authRequired gin.HandlerFunc
}

// NewAdminOrderHandler creates a new AdminOrderHandler
func NewAdminOrderHandler(orderService *orderapp.AdminService, authRequired gin.HandlerFunc) *AdminOrderHandler {
	return &AdminOrderHandler{
		orderService: orderService,
		authRequired: authRequired,
	}
}

// RegisterRoutes registers admin order routes
func (h *AdminOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/admin/orders")
	orders.Use(h.authRequired)
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id/status", h.UpdateStatus)
	}
}

// List returns a page of orders, newest first
func (h *AdminOrderHandler) List(c *gin.Context) {
	var req orderapp.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	resp, err := h.orderService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, resp.Orders, resp.Total, resp.Page, resp.PageSize)
}

// Get returns a single order with its items
func (h *AdminOrderHandler) Get(c *gin.Context) {
	resp, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateStatus transitions an order's fulfillment status
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	var req orderapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Status is required")
		return
	}
	resp, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
