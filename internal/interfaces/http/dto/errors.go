package dto

import "net/http"

// General error codes used by the HTTP layer itself
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 500.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,

	// auth
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,

	// conflicts
	"ALREADY_EXISTS":       http.StatusConflict,
	"DUPLICATE_NUMBER":     http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// business rules -> 422
	"STORE_CLOSED":      http.StatusUnprocessableEntity,
	"EMPTY_CART":        http.StatusUnprocessableEntity,
	"MIN_ORDER_NOT_MET": http.StatusUnprocessableEntity,
	"PICKUP_PAUSED":     http.StatusUnprocessableEntity,
	"DELIVERY_PAUSED":   http.StatusUnprocessableEntity,
	"HAS_ITEMS":         http.StatusUnprocessableEntity,
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":    http.StatusUnprocessableEntity,
	"ALREADY_INACTIVE":  http.StatusUnprocessableEntity,

	// malformed input -> 400
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_NUMBER":       http.StatusBadRequest,
	"INVALID_NAME":         http.StatusBadRequest,
	"INVALID_PRICE":        http.StatusBadRequest,
	"INVALID_SIZE":         http.StatusBadRequest,
	"INVALID_SLUG":         http.StatusBadRequest,
	"INVALID_TITLE":        http.StatusBadRequest,
	"INVALID_SAUCE_POLICY": http.StatusBadRequest,
	"INVALID_CATEGORY":     http.StatusBadRequest,
	"INVALID_CUSTOMER":     http.StatusBadRequest,
	"INVALID_SERVICE":      http.StatusBadRequest,
	"INVALID_EMAIL":        http.StatusBadRequest,
	"INVALID_ROLE":         http.StatusBadRequest,
	"WEAK_PASSWORD":        http.StatusBadRequest,
	"MISSING_SESSION":      http.StatusBadRequest,
	"MISSING_ADDRESS":      http.StatusBadRequest,
	"MISSING_ZONE":         http.StatusBadRequest,
	"UNKNOWN_ZONE":         http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
