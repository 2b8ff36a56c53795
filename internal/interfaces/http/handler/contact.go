package handler

import (
	"github.com/gin-gonic/gin"

	contactapp "github.com/storefront/backend/internal/application/contact"
)

// ContactHandler accepts storefront contact-form submissions
type ContactHandler struct {
	BaseHandler
	contactService *contactapp.Service
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *contactapp.Service) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// RegisterRoutes registers contact routes
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

// Submit stores a contact-form message
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactapp.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// AdminContactHandler lists contact submissions for the back office
type AdminContactHandler struct {
	BaseHandler
	contactService *contactapp.Service
	authRequired   gin.HandlerFunc
}

// NewAdminContactHandler creates a new AdminContactHandler
func NewAdminContactHandler(contactService *contactapp.Service, authRequired gin.HandlerFunc) *AdminContactHandler {
	return &AdminContactHandler{
		contactService: contactService,
		authRequired:   authRequired,
	}
}

// RegisterRoutes registers admin contact routes
func (h *AdminContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/contacts", h.authRequired, h.List)
}

// List returns all contact submissions, newest first
func (h *AdminContactHandler) List(c *gin.Context) {
	resp, err := h.contactService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
