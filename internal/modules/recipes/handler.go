package recipes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bitewrap/internal/pkg/response"
	"bitewrap/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	recipeGroup := rg.Group("/recipes")
	{
		recipeGroup.GET("", h.List)
		recipeGroup.POST("", h.Create)
		recipeGroup.GET("/:id", h.Get)
		recipeGroup.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	recipes, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to load recipes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recipes": toRecipeListResponse(recipes)})
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe", errs)
		return
	}

	recipe, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Recipe name is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to create recipe")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"recipe": toRecipeResponse(recipe)})
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe id")
		return
	}

	recipe, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to load recipe")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recipe": toRecipeResponse(recipe)})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to delete recipe")
		return
	}

	c.Status(http.StatusNoContent)
}
