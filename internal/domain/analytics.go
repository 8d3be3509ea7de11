package domain

import "time"

type ItemType string

const (
	ItemRestaurant ItemType = "restaurant"
	ItemRecipe     ItemType = "recipe"
	ItemIngredient ItemType = "ingredient"
)

// AnalyticsCounter is a per-period tally of one item. The insights
// endpoint reads these rows; the logs module increments them when an
// entry is added. Counters are a running total and are not decremented
// on delete.
type AnalyticsCounter struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_counter"`
	ItemType  ItemType  `json:"item_type" gorm:"size:16;not null;uniqueIndex:idx_counter"`
	ItemName  string    `json:"item_name" gorm:"not null;uniqueIndex:idx_counter"`
	Year      int       `json:"year" gorm:"not null;uniqueIndex:idx_counter"`
	Month     int       `json:"month" gorm:"not null;uniqueIndex:idx_counter"`
	Count     int64     `json:"count" gorm:"not null"`
	Image     string    `json:"image,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AnalyticsCounter) TableName() string { return "analytics" }
