package repository

import (
	"context"

	"gorm.io/gorm"

	"bitewrap/internal/domain"
)

// CounterBump is one analytics increment applied alongside a log write.
type CounterBump struct {
	ItemType domain.ItemType
	ItemName string
	Image    string
}

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// AddEntry creates the meal row, the log entry pointing at it, and the
// analytics increments in a single transaction. A unique-index
// violation on the (user, date, meal_type) slot surfaces unchanged for
// the service to classify.
func (r *LogRepository) AddEntry(ctx context.Context, meal *domain.Meal, entry *domain.LogEntry, bumps []CounterBump) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		entry.MealID = meal.ID
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if err := applyCounterBumps(tx, entry.UserID, entry.Date, bumps); err != nil {
			return err
		}
		entry.Meal = meal
		return nil
	})
}

func (r *LogRepository) ListByDate(ctx context.Context, userID int64, date string) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Preload("Meal").
		Find(&entries).Error
	return entries, err
}

// DeleteBySlot removes the entry and its meal row. Returns the number
// of entries removed; zero means the slot was already empty.
func (r *LogRepository) DeleteBySlot(ctx context.Context, userID int64, date string, mealType domain.MealType) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry domain.LogEntry
		if err := tx.Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, mealType).
			First(&entry).Error; err != nil {
			if IsRecordNotFound(err) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&domain.LogEntry{}, entry.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Meal{}, entry.MealID).Error; err != nil {
			return err
		}
		deleted = 1
		return nil
	})
	return deleted, err
}

// ListRestaurantVisits returns entries whose meal was eaten out,
// newest first.
func (r *LogRepository) ListRestaurantVisits(ctx context.Context, userID int64, limit int) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	q := r.db.WithContext(ctx).
		Joins("JOIN meals ON meals.id = logs.meal_id").
		Where("logs.user_id = ? AND meals.location <> ?", userID, domain.LocationHome).
		Order("logs.date DESC, logs.created_at DESC").
		Preload("Meal")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}
