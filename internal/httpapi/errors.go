package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	"anukriti-backend/internal/core"
)

// writeError maps core errors onto HTTP statuses. Anything unrecognized is a
// 500 with a generic message; details go to the log, not the client.
func (s *Server) writeError(c *gin.Context, err error) {
	var (
		validation   *core.ValidationError
		notFound     *core.NotFoundError
		insufficient *core.InsufficientStockError
		transition   *core.InvalidTransitionError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(400, gin.H{"error": validation.Error(), "field": validation.Field})
	case errors.Is(err, core.ErrEmptyCart):
		c.JSON(400, gin.H{"error": "Cart is empty"})
	case errors.Is(err, core.ErrPermissionDenied):
		c.JSON(403, gin.H{"error": "Admin access required"})
	case errors.As(err, &notFound):
		c.JSON(404, gin.H{"error": notFound.Error()})
	case errors.As(err, &insufficient):
		c.JSON(409, gin.H{
			"error":      "Insufficient stock",
			"product_id": insufficient.ProductID,
			"details":    insufficient.Error(),
		})
	case errors.As(err, &transition):
		c.JSON(409, gin.H{"error": transition.Error()})
	default:
		s.log.WithError(err).Error("request failed")
		c.JSON(500, gin.H{"error": "internal error"})
	}
}
