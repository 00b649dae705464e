package branch

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/branches
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	branches, err := h.service.ListBranches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch branches"})
		return
	}

	c.JSON(http.StatusOK, branches)
}

// --------------------------------------------------
// GET /api/visitors/:visitorId/branch
// --------------------------------------------------
func (h *Handler) GetSelection(c *gin.Context) {
	b, err := h.service.SelectedBranch(c.Request.Context(), c.Param("visitorId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// --------------------------------------------------
// PUT /api/visitors/:visitorId/branch
// --------------------------------------------------
func (h *Handler) PutSelection(c *gin.Context) {
	var req struct {
		BranchID int `json:"branch_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.BranchID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branch_id is required"})
		return
	}

	b, err := h.service.SelectBranch(c.Request.Context(), c.Param("visitorId"), req.BranchID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ParseBranchID reads a numeric branch id path parameter.
func ParseBranchID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid branch id")
	}
	return id, nil
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidVisitor):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrBranchNotFound), errors.Is(err, ErrNoSelection):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
