package favorite

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitewrap/internal/domain"
	"bitewrap/internal/pkg/response"
	"bitewrap/internal/repository"
)

// Handler serves the favorite-restaurant bookmarks. Thin enough that
// it talks to the repository directly.
type Handler struct {
	repo repository.FavoriteRepository
}

func NewHandler(repo repository.FavoriteRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("", h.Add)
		favorites.DELETE("/:name", h.Remove)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	favorites, err := h.repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to load favorites")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorites": toFavoriteListResponse(favorites)})
}

func (h *Handler) Add(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	fav := &domain.FavoriteRestaurant{
		UserID:             userID,
		RestaurantName:     req.RestaurantName,
		RestaurantImage:    req.RestaurantImage,
		RestaurantLocation: req.RestaurantLocation,
	}

	if err := h.repo.Add(c.Request.Context(), fav); err != nil {
		if errors.Is(err, repository.ErrAlreadyFavorite) {
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Restaurant is already a favorite")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to add favorite")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"favorite": toFavoriteResponse(fav)})
}

func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetInt64("user_id")

	name := c.Param("name")
	if name == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Restaurant name is required")
		return
	}

	if err := h.repo.RemoveByName(c.Request.Context(), userID, name); err != nil {
		if errors.Is(err, repository.ErrFavoriteMissing) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BACKEND_ERROR", "Failed to remove favorite")
		return
	}

	c.Status(http.StatusNoContent)
}
