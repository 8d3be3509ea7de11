package recipes

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bitewrap/internal/database"
	"bitewrap/internal/domain"
	"bitewrap/internal/repository"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:recipes_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")
	return NewService(repository.NewRecipeRepository(db)), db
}

func TestCreateKeepsIngredientOrder(t *testing.T) {
	svc, _ := setupTestService(t)

	recipe, err := svc.Create(context.Background(), 1, CreateRecipeRequest{
		Name: "Margherita Pizza",
		Time: "40 min",
		Ingredients: []IngredientRequest{
			{Name: "Pizza Dough", Amount: 1, Unit: "ball"},
			{Name: "Mozzarella", Amount: 200, Unit: "g"},
			{Name: "Basil", Amount: 1, Unit: "handful"},
		},
	})
	require.NoError(t, err)
	require.Len(t, recipe.Ingredients, 3)
	assert.Equal(t, "Pizza Dough", recipe.Ingredients[0].Ingredient.Name)
	assert.Equal(t, "Mozzarella", recipe.Ingredients[1].Ingredient.Name)
	assert.Equal(t, "Basil", recipe.Ingredients[2].Ingredient.Name)
	assert.Equal(t, "g", recipe.Ingredients[1].Unit)
}

func TestIngredientsDeduplicateByName(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateRecipeRequest{
		Name:        "Oats",
		Ingredients: []IngredientRequest{{Name: "Milk", Amount: 1, Unit: "cup"}},
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 1, CreateRecipeRequest{
		Name:        "Pancakes",
		Ingredients: []IngredientRequest{{Name: "milk", Amount: 2, Unit: "cups"}},
	})
	require.NoError(t, err)

	var stored []domain.Ingredient
	require.NoError(t, db.Where("LOWER(name) = ?", "milk").Find(&stored).Error)
	require.Len(t, stored, 1)
	// The shared row keeps the casing it was first authored with.
	assert.Equal(t, "Milk", stored[0].Name)
}

func TestDeleteRemovesJoinRows(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	recipe, err := svc.Create(ctx, 1, CreateRecipeRequest{
		Name:        "Oats",
		Ingredients: []IngredientRequest{{Name: "milk"}, {Name: "oats"}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, recipe.ID))

	var joins int64
	require.NoError(t, db.Model(&domain.RecipeIngredient{}).
		Where("recipe_id = ?", recipe.ID).Count(&joins).Error)
	assert.Zero(t, joins)

	// Shared ingredient rows survive.
	var ingredients int64
	require.NoError(t, db.Model(&domain.Ingredient{}).Count(&ingredients).Error)
	assert.EqualValues(t, 2, ingredients)

	assert.ErrorIs(t, svc.Delete(ctx, 1, recipe.ID), ErrNotFound)
}

func TestDeleteIsScopedToOwner(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	recipe, err := svc.Create(ctx, 1, CreateRecipeRequest{Name: "Oats"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, 2, recipe.ID), ErrNotFound)

	got, err := svc.Get(ctx, 1, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oats", got.Name)
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second"} {
		_, err := svc.Create(ctx, 1, CreateRecipeRequest{Name: name})
		require.NoError(t, err)
	}

	recipes, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
}
