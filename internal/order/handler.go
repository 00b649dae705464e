package order

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/orders
// --------------------------------------------------
func (h *Handler) Place(c *gin.Context) {
	var req struct {
		ItemID int `json:"item_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}

	conf, err := h.service.PlaceOrder(c.Request.Context(), req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownItem):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "order cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, conf)
}
