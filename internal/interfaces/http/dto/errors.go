package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes emitted by the domain and application layers are stable API
// contract, so they are passed through unchanged.
var domainCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"INVALID_INPUT":  http.StatusBadRequest,
	"INVALID_STATE":  http.StatusUnprocessableEntity,
	"UNAUTHORIZED":   http.StatusUnauthorized,
	"FORBIDDEN":      http.StatusForbidden,

	// Validation of customer input
	"INVALID_PHONE":          http.StatusBadRequest,
	"INVALID_EMAIL":          http.StatusBadRequest,
	"INVALID_NAME":           http.StatusBadRequest,
	"INVALID_MESSAGE":        http.StatusBadRequest,
	"INVALID_PRICE":          http.StatusBadRequest,
	"INVALID_QUANTITY":       http.StatusBadRequest,
	"INVALID_ORDER_ID":       http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD": http.StatusBadRequest,
	"INVALID_STATUS":         http.StatusBadRequest,
	"INVALID_PAYMENT_STATUS": http.StatusBadRequest,

	// Checkout business rules
	"EMPTY_CART":                http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":        http.StatusUnprocessableEntity,
	"INVALID_STATUS_TRANSITION": http.StatusUnprocessableEntity,
	"SUBMISSION_IN_FLIGHT":      http.StatusConflict,
	"CONCURRENCY_CONFLICT":      http.StatusConflict,

	// Payment reconciliation
	"CONFIGURATION_ERROR": http.StatusServiceUnavailable,
	"SESSION_EXPIRED":     http.StatusGone,
	"VERIFICATION_FAILED": http.StatusUnprocessableEntity,
	"GATEWAY_ERROR":       http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes default to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
