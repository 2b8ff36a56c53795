package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// AdminInventoryHandler exposes catalog and stock management for the
// back office
type AdminInventoryHandler struct {
	BaseHandler
	catalogService *catalogapp.Service
	authRequired   gin.HandlerFunc
}

// NewAdminInventoryHandler creates a new AdminInventoryHandler
func NewAdminInventoryHandler(catalogService *catalogapp.Service, authRequired gin.HandlerFunc) *AdminInventoryHandler {
	return &AdminInventoryHandler{
		catalogService: catalogService,
		authRequired:   authRequired,
	}
}

// RegisterRoutes registers admin inventory routes
func (h *AdminInventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(h.authRequired)
	{
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.POST("/products/:id/variants", h.AddVariant)
		admin.PUT("/variants/:id/stock", h.UpdateStock)
		admin.POST("/variants/:id/image-upload-url", h.GenerateImageUploadURL)
	}
}

// CreateProduct creates a new product
func (h *AdminInventoryHandler) CreateProduct(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateProduct updates the details of an existing product
func (h *AdminInventoryHandler) UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Product ID must be a valid UUID")
		return
	}
	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.catalogService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddVariant adds a purchasable variant to a product
func (h *AdminInventoryHandler) AddVariant(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Product ID must be a valid UUID")
		return
	}
	var req catalogapp.AddVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.catalogService.AddVariant(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateStock sets the stock quantity of a variant
func (h *AdminInventoryHandler) UpdateStock(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Variant ID must be a valid UUID")
		return
	}
	var req catalogapp.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.catalogService.UpdateStock(c.Request.Context(), variantID, req.StockQuantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GenerateImageUploadURL returns a presigned URL for uploading a variant
// image directly to object storage
func (h *AdminInventoryHandler) GenerateImageUploadURL(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Variant ID must be a valid UUID")
		return
	}
	var req struct {
		ContentType string `json:"content_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Content type is required")
		return
	}
	resp, err := h.catalogService.GenerateImageUploadURL(c.Request.Context(), variantID, req.ContentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
