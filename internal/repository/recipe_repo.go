package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"bitewrap/internal/domain"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// IngredientInput is one authored ingredient line.
type IngredientInput struct {
	Name   string
	Amount float64
	Unit   string
}

// Create inserts the recipe with its ingredient lines. Ingredients are
// deduplicated case-insensitively across the whole table, but the row
// keeps the casing it was first authored with; join rows keep the
// authored order.
func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe, ingredients []IngredientInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i, in := range ingredients {
			name := strings.TrimSpace(in.Name)
			if name == "" {
				continue
			}
			var ing domain.Ingredient
			err := tx.Where("LOWER(name) = ?", strings.ToLower(name)).First(&ing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				ing = domain.Ingredient{Name: name}
				if err := tx.Create(&ing).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			}
			link := domain.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ing.ID,
				Amount:       in.Amount,
				Unit:         in.Unit,
				Position:     i,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RecipeRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Preload("Ingredients.Ingredient").
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Preload("Ingredients.Ingredient").
		First(&recipe, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &recipe, nil
}

// FindByName matches a recipe case-insensitively. Used to decide
// whether a logged home meal counts as a cooked recipe.
func (r *RecipeRepository) FindByName(ctx context.Context, userID int64, name string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = ?", userID, strings.ToLower(strings.TrimSpace(name))).
		Preload("Ingredients.Ingredient").
		First(&recipe)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &recipe, nil
}

// Delete removes the recipe and its join rows. Shared ingredient rows
// stay; other recipes may reference them.
func (r *RecipeRepository) Delete(ctx context.Context, userID, id int64) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ?", userID).Delete(&domain.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Where("recipe_id = ?", id).Delete(&domain.RecipeIngredient{}).Error
	})
	return deleted, err
}
