package handlers

import (
	"github.com/gin-gonic/gin"

	"finalloc/internal/middleware"
)

// ErrorDetail is the body of an error response.
type ErrorDetail struct {
	Code    string `json:"code" example:"INVALID_INPUT"`
	Message string `json:"message" example:"Invalid input"`
}

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is a generic acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError writes a consistent JSON error response. AppErrors keep
// their status, code, and message; anything else becomes a generic 500.
func respondWithError(c *gin.Context, err error) {
	middleware.RespondError(c, err)
}
