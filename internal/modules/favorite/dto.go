package favorite

import (
	"time"

	"bitewrap/internal/domain"
)

type AddFavoriteRequest struct {
	RestaurantName     string `json:"restaurant_name" binding:"required"`
	RestaurantImage    string `json:"restaurant_image"`
	RestaurantLocation string `json:"restaurant_location"`
}

type FavoriteResponse struct {
	ID                 int64     `json:"id"`
	RestaurantName     string    `json:"restaurant_name"`
	RestaurantImage    string    `json:"restaurant_image,omitempty"`
	RestaurantLocation string    `json:"restaurant_location,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toFavoriteResponse(f *domain.FavoriteRestaurant) FavoriteResponse {
	return FavoriteResponse{
		ID:                 f.ID,
		RestaurantName:     f.RestaurantName,
		RestaurantImage:    f.RestaurantImage,
		RestaurantLocation: f.RestaurantLocation,
		CreatedAt:          f.CreatedAt,
	}
}

func toFavoriteListResponse(favorites []domain.FavoriteRestaurant) []FavoriteResponse {
	items := make([]FavoriteResponse, len(favorites))
	for i := range favorites {
		items[i] = toFavoriteResponse(&favorites[i])
	}
	return items
}
