package menu

import (
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
// GET /api/menu?category=&spice=&price=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	sel, err := ParseSelection(
		c.Query("category"),
		c.Query("spice"),
		c.Query("price"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     h.service.Catalog(),
		"selection": sel,
		"result":    h.service.Filter(sel),
	})
}

// --------------------------------------------------
// POST /api/menu/filter-sessions
// --------------------------------------------------
func (h *Handler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.service.CreateSession())
}

// --------------------------------------------------
// GET /api/menu/filter-sessions/:id
// --------------------------------------------------
func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.service.GetSession(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// PATCH /api/menu/filter-sessions/:id
// --------------------------------------------------
func (h *Handler) UpdateSession(c *gin.Context) {
	var req struct {
		Dimension string `json:"dimension"`
		Value     string `json:"value"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.service.UpdateSession(
		c.Param("id"),
		Dimension(req.Dimension),
		req.Value,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// DELETE /api/menu/filter-sessions/:id
// --------------------------------------------------
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.service.DeleteSession(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
