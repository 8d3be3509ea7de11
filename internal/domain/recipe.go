package domain

import "time"

// Recipe is a user-authored cookable dish. Logged "home" meals are
// matched to recipes by name, not by foreign key.
type Recipe struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Time      string    `json:"time"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string { return "recipes" }

// Ingredient is deduplicated by name across recipes.
type Ingredient struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Ingredient) TableName() string { return "ingredients" }

// RecipeIngredient joins a recipe to an ingredient with the amount and
// unit used. Position preserves the authored order.
type RecipeIngredient struct {
	ID           int64   `json:"id" gorm:"primaryKey"`
	RecipeID     int64   `json:"recipe_id" gorm:"not null;index"`
	IngredientID int64   `json:"ingredient_id" gorm:"not null;index"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
	Position     int     `json:"position"`

	Ingredient *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }
