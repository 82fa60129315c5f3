package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sipstation/internal/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type chatRequest struct {
	Message  string `json:"message"`
	UseAI    bool   `json:"use_ai"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Chat answers one customer message.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.service.Chat(c.Request.Context(), req.Message, req.UseAI, req.Provider, req.Model)
	response.OK(c, res)
}
