package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sipstation/internal/catalog"
	"sipstation/internal/pricing"
	"sipstation/internal/response"
)

type Handler struct {
	service *Service
	catalog *catalog.Catalog
}

func NewHandler(service *Service, catalog *catalog.Catalog) *Handler {
	return &Handler{service: service, catalog: catalog}
}

type createRequest struct {
	Beverage   string              `json:"beverage"`
	Condiments []pricing.Selection `json:"condiments"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// Create composes the requested beverage and condiments, prices
// them, and stores the resulting order.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Beverage == "" {
		response.Error(c, http.StatusBadRequest, "beverage is required")
		return
	}

	composite, err := pricing.Compose(h.catalog, req.Beverage, req.Condiments)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	o := h.service.Create(composite)
	response.OK(c, gin.H{"order": o})
}

// Get looks up a single order by id.
func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "order not found")
		return
	}
	response.OK(c, gin.H{"order": o})
}

// History returns recent orders, most recent first. An optional
// limit query overrides the default of 5.
func (h *Handler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	response.OK(c, gin.H{"history": h.service.History(limit)})
}

// UpdateStatus applies a status transition.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.service.UpdateStatus(c.Param("id"), req.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "invalid status value")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "order not found")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "invalid status transition")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, err.Error())
	default:
		response.OK(c, gin.H{"order": o})
	}
}
