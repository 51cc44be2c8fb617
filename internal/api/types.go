package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ryank-holgate/ChronoChef/internal/logger"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

// errorResponse is the {message, errors?} shape the client renders
type errorResponse struct {
	Message string             `json:"message"`
	Errors  []types.FieldError `json:"errors,omitempty"`
}

// respondError converts a failure into its HTTP status. Validation failures
// carry field-level reasons; everything else gets a generic message and the
// detail stays in the server log.
func respondError(c *gin.Context, err error) {
	if verr, ok := types.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request data",
			Errors:  verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, types.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Authentication required"})
	case errors.Is(err, types.ErrDuplicateKey):
		c.JSON(http.StatusConflict, errorResponse{Message: "Email or username already in use"})
	case errors.Is(err, types.ErrServiceUnavailable):
		logger.Error("generation service unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, errorResponse{Message: "Recipe generation service is temporarily unavailable"})
	case errors.Is(err, types.ErrUpstreamFormat):
		logger.Error("generation backend returned malformed data", zap.Error(err))
		c.JSON(http.StatusBadGateway, errorResponse{Message: "Recipe generation returned an invalid response"})
	case errors.Is(err, types.ErrUpstream):
		logger.Error("generation backend request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, errorResponse{Message: "Failed to generate recipes"})
	default:
		logger.Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "An unexpected error occurred"})
	}
}

// userIDFromContext returns the identity resolved by the auth middleware
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}
