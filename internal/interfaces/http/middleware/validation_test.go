package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	require.NotNil(t, v)
}

func TestInphoneTag(t *testing.T) {
	SetupValidator()
	v := binding.Validator.Engine().(*validator.Validate)

	type payload struct {
		Phone string `validate:"inphone"`
	}

	valid := []string{"9876543210", "919876543210", "+91 98765 43210", "98765-43210"}
	for _, p := range valid {
		assert.NoError(t, v.Struct(payload{Phone: p}), "expected %q to be valid", p)
	}

	invalid := []string{"12345", "5876543210", "98765432100", "call me maybe"}
	for _, p := range invalid {
		assert.Error(t, v.Struct(payload{Phone: p}), "expected %q to be invalid", p)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	SetupValidator()

	type testRequest struct {
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone" binding:"required,inphone"`
	}

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req testRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, FormatValidationErrors(err, "req-1"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	body := strings.NewReader(`{"email": "not-an-email", "phone": "12345"}`)
	req := httptest.NewRequest(http.MethodPost, "/test", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)

	// Field names come from the json tags
	fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
}
