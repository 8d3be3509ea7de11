package logs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bitewrap/internal/domain"
	"bitewrap/internal/pkg/response"
	"bitewrap/internal/pkg/validator"
)

const defaultRecentLimit = 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	logGroup := rg.Group("/logs")
	{
		logGroup.GET("", h.ListByDate)
		logGroup.POST("", h.AddEntry)
		logGroup.DELETE("", h.DeleteEntry)
		logGroup.GET("/restaurants/recent", h.ListRecentRestaurantVisits)
	}
}

func (h *Handler) ListByDate(c *gin.Context) {
	userID := c.GetInt64("user_id")

	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	entries, err := h.service.ListByDate(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to load logs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":    date,
		"entries": toEntryListResponse(entries),
	})
}

func (h *Handler) AddEntry(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid log entry", errs)
		return
	}

	entry, err := h.service.AddEntry(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "meal_type must be breakfast, lunch or dinner")
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "SLOT_TAKEN", "This meal slot is already logged for that day")
		default:
			response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to add log entry")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"entry": toEntryResponse(entry)})
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req DeleteEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.DeleteEntry(c.Request.Context(), userID, req.Date, domain.MealType(req.MealType))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or meal_type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to delete log entry")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListRecentRestaurantVisits(c *gin.Context) {
	userID := c.GetInt64("user_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecentLimit)))
	if limit < 1 || limit > 50 {
		limit = defaultRecentLimit
	}

	entries, err := h.service.ListRecentRestaurantVisits(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to load restaurant visits")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"entries": toEntryListResponse(entries)})
}
