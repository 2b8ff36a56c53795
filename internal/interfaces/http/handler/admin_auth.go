package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// AdminAuthHandler issues tokens for the single back-office admin
// account configured via environment
type AdminAuthHandler struct {
	BaseHandler
	jwtService *auth.JWTService
	admin      config.AdminConfig
	logger     *zap.Logger
}

// NewAdminAuthHandler creates a new AdminAuthHandler
func NewAdminAuthHandler(jwtService *auth.JWTService, admin config.AdminConfig, logger *zap.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{
		jwtService: jwtService,
		admin:      admin,
		logger:     logger.Named("admin-auth"),
	}
}

// LoginRequest carries admin credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRoutes registers admin auth routes
func (h *AdminAuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

// Login verifies the configured admin credentials and issues a JWT
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Username and password are required")
		return
	}

	if req.Username != h.admin.Username || !auth.CheckPassword(h.admin.PasswordHash, req.Password) {
		h.logger.Warn("admin login rejected",
			zap.String("username", req.Username),
			zap.String("ip", c.ClientIP()))
		h.Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		h.logger.Error("failed to generate admin token", zap.Error(err))
		h.InternalError(c, "Failed to generate token")
		return
	}

	h.logger.Info("admin logged in", zap.String("username", req.Username))
	h.Success(c, token)
}
