package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bitewrap/internal/domain"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// ListByUser returns every counter row for the user. Period filtering
// happens in the insights service, not in SQL.
func (r *AnalyticsRepository) ListByUser(ctx context.Context, userID int64) ([]domain.AnalyticsCounter, error) {
	var counters []domain.AnalyticsCounter
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&counters).Error
	return counters, err
}

// applyCounterBumps upserts one increment per bump into the month
// bucket of the given log date.
func applyCounterBumps(tx *gorm.DB, userID int64, date string, bumps []CounterBump) error {
	if len(bumps) == 0 {
		return nil
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	for _, b := range bumps {
		row := domain.AnalyticsCounter{
			UserID:   userID,
			ItemType: b.ItemType,
			ItemName: b.ItemName,
			Year:     day.Year(),
			Month:    int(day.Month()),
			Count:    1,
			Image:    b.Image,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "item_type"}, {Name: "item_name"},
				{Name: "year"}, {Name: "month"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":      gorm.Expr("count + 1"),
				"updated_at": time.Now(),
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
