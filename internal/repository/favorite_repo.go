package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"bitewrap/internal/domain"
)

var (
	ErrAlreadyFavorite = errors.New("restaurant already in favorites")
	ErrFavoriteMissing = errors.New("favorite not found")
)

type FavoriteRepository interface {
	Add(ctx context.Context, fav *domain.FavoriteRestaurant) error
	RemoveByName(ctx context.Context, userID int64, restaurantName string) error
	ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteRestaurant, error)
	Exists(ctx context.Context, userID int64, restaurantName string) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, fav *domain.FavoriteRestaurant) error {
	fav.RestaurantName = strings.TrimSpace(fav.RestaurantName)

	exists, err := r.Exists(ctx, fav.UserID, fav.RestaurantName)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorite
	}

	return r.db.WithContext(ctx).Create(fav).Error
}

func (r *favoriteRepository) RemoveByName(ctx context.Context, userID int64, restaurantName string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_name = ?", userID, strings.TrimSpace(restaurantName)).
		Delete(&domain.FavoriteRestaurant{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteMissing
	}
	return nil
}

// ListByUser returns the user's bookmarks, newest first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteRestaurant, error) {
	var favorites []domain.FavoriteRestaurant
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) Exists(ctx context.Context, userID int64, restaurantName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FavoriteRestaurant{}).
		Where("user_id = ? AND restaurant_name = ?", userID, strings.TrimSpace(restaurantName)).
		Count(&count).Error
	return count > 0, err
}
