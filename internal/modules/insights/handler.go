package insights

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitewrap/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/insights", h.GetInsights)
}

// GetInsights never fails: the service degrades to empty lists.
func (h *Handler) GetInsights(c *gin.Context) {
	userID := c.GetInt64("user_id")

	data := h.service.ComputeInsights(c.Request.Context(), userID)
	response.Success(c, http.StatusOK, data)
}
