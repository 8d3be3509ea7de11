package places

import (
	"net/http"
	"strconv"

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
	rg.GET("/restaurants/nearby", h.SearchNearby)
}

func (h *Handler) SearchNearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "latitude and longitude query parameters are required")
		return
	}

	restaurants, err := h.service.SearchNearby(c.Request.Context(), Location{Latitude: lat, Longitude: lon})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to search nearby restaurants")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurants": restaurants})
}
