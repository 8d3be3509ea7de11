package domain

import "time"

// LocationHome is the sentinel location marking a self-cooked meal.
// Any other location string is a restaurant or venue name.
const LocationHome = "home"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// SlotRank orders meal types for display: breakfast < lunch < dinner.
// Unknown types sort last.
func (t MealType) SlotRank() int {
	switch t {
	case MealBreakfast:
		return 0
	case MealLunch:
		return 1
	case MealDinner:
		return 2
	}
	return 3
}

func (t MealType) Valid() bool {
	return t == MealBreakfast || t == MealLunch || t == MealDinner
}

// Meal is the descriptive record of one logged food item. It is owned
// by exactly one user and immutable once logged except via delete.
type Meal struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Meal) TableName() string { return "meals" }

func (m *Meal) IsHomeCooked() bool { return m.Location == LocationHome }

// LogEntry records one meal against a (date, meal type) slot. Date is a
// calendar day in YYYY-MM-DD form, no time component. At most one entry
// may exist per (user, date, meal type); the unique index enforces it.
type LogEntry struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_log_slot"`
	Date      string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_log_slot"`
	MealType  MealType  `json:"meal_type" gorm:"size:16;not null;uniqueIndex:idx_log_slot"`
	MealID    int64     `json:"meal_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	Meal *Meal `json:"meal,omitempty" gorm:"foreignKey:MealID"`
}

func (LogEntry) TableName() string { return "logs" }
