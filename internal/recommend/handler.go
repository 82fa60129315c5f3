package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sipstation/internal/llm"
	"sipstation/internal/order"
	"sipstation/internal/response"
)

// HistoryReader is the slice of the order service the
// recommender needs. It only ever reads.
type HistoryReader interface {
	History(limit int) []*order.Order
}

type Handler struct {
	service  *Service
	registry *llm.Registry
	history  HistoryReader
}

func NewHandler(service *Service, registry *llm.Registry, history HistoryReader) *Handler {
	return &Handler{service: service, registry: registry, history: history}
}

type aiRequest struct {
	Preference string `json:"preference"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Template   string `json:"template"`
}

// Heuristic serves the local frequency-based recommendation.
func (h *Handler) Heuristic(c *gin.Context) {
	res := h.service.Heuristic(h.history.History(order.HistoryCapacity))
	response.OK(c, gin.H{"recommendation": res.Recommendation, "source": res.Source})
}

// AIRecommendation serves the delegated recommendation. Provider
// failures degrade to the heuristic inside the service, so this
// endpoint never returns a 5xx for upstream trouble.
func (h *Handler) AIRecommendation(c *gin.Context) {
	var req aiRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.service.Delegated(
		c.Request.Context(),
		req.Preference,
		req.Provider,
		req.Model,
		req.Template,
		h.history.History(order.HistoryCapacity),
	)
	response.OK(c, res)
}

// AvailableModels lists the configured providers and their models.
func (h *Handler) AvailableModels(c *gin.Context) {
	response.OK(c, gin.H{
		"providers":       h.registry.Providers(),
		"provider_models": h.registry.ModelsByProvider(),
	})
}
