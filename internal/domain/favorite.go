package domain

import "time"

// FavoriteRestaurant is a user-scoped bookmark. Its lifecycle is
// independent from log entries.
type FavoriteRestaurant struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	UserID             int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_restaurant"`
	RestaurantName     string    `json:"restaurant_name" gorm:"not null;uniqueIndex:idx_user_restaurant"`
	RestaurantImage    string    `json:"restaurant_image"`
	RestaurantLocation string    `json:"restaurant_location"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (FavoriteRestaurant) TableName() string { return "favorite_restaurants" }
