package catalog

import (
	"github.com/gin-gonic/gin"

	"sipstation/internal/response"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// ListBeverages returns every beverage keyed by id.
func (h *Handler) ListBeverages(c *gin.Context) {
	response.OK(c, h.catalog.Beverages())
}

// ListCondiments returns every condiment keyed by id.
func (h *Handler) ListCondiments(c *gin.Context) {
	response.OK(c, h.catalog.Condiments())
}
