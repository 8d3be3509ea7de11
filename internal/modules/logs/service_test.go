package logs

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

type testEnv struct {
	db      *gorm.DB
	service *Service
	recipes *repository.RecipeRepository
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:logs_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")

	recipeRepo := repository.NewRecipeRepository(db)
	return &testEnv{
		db:      db,
		service: NewService(repository.NewLogRepository(db), recipeRepo, nil),
		recipes: recipeRepo,
	}
}

func addEntry(t *testing.T, env *testEnv, userID int64, date, mealType, name, location string) *domain.LogEntry {
	t.Helper()
	entry, err := env.service.AddEntry(context.Background(), userID, AddEntryRequest{
		Date:     date,
		MealType: mealType,
		Name:     name,
		Location: location,
	})
	require.NoError(t, err)
	return entry
}

func TestListByDateEmptyDay(t *testing.T) {
	env := setupTestEnv(t)

	entries, err := env.service.ListByDate(context.Background(), 1, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListByDateOrdersMealTypes(t *testing.T) {
	env := setupTestEnv(t)

	// Insert out of slot order on purpose.
	addEntry(t, env, 1, "2024-06-01", "dinner", "Pasta", "home")
	addEntry(t, env, 1, "2024-06-01", "breakfast", "Oatmeal", "home")
	addEntry(t, env, 1, "2024-06-01", "lunch", "Sandwich", "home")

	entries, err := env.service.ListByDate(context.Background(), 1, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.MealBreakfast, entries[0].MealType)
	assert.Equal(t, domain.MealLunch, entries[1].MealType)
	assert.Equal(t, domain.MealDinner, entries[2].MealType)
	require.NotNil(t, entries[0].Meal)
	assert.Equal(t, "Oatmeal", entries[0].Meal.Name)
}

func TestAddEntryRejectsOccupiedSlot(t *testing.T) {
	env := setupTestEnv(t)

	addEntry(t, env, 1, "2024-06-01", "lunch", "Sandwich", "home")

	_, err := env.service.AddEntry(context.Background(), 1, AddEntryRequest{
		Date:     "2024-06-01",
		MealType: "lunch",
		Name:     "Second Lunch",
		Location: "home",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Same slot for another user is fine.
	_, err = env.service.AddEntry(context.Background(), 2, AddEntryRequest{
		Date:     "2024-06-01",
		MealType: "lunch",
		Name:     "Sandwich",
		Location: "home",
	})
	assert.NoError(t, err)
}

func TestAddEntryValidation(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.service.AddEntry(context.Background(), 1, AddEntryRequest{
		Date:     "2024-06-01",
		MealType: "brunch",
		Name:     "Eggs",
		Location: "home",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.service.AddEntry(context.Background(), 1, AddEntryRequest{
		Date:     "June 1st",
		MealType: "lunch",
		Name:     "Eggs",
		Location: "home",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteEntryIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	addEntry(t, env, 1, "2024-06-01", "breakfast", "Oatmeal", "home")

	// Deleting an empty slot is a no-op, not an error.
	require.NoError(t, env.service.DeleteEntry(ctx, 1, "2024-06-01", domain.MealDinner))

	entries, err := env.service.ListByDate(ctx, 1, "2024-06-01")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, env.service.DeleteEntry(ctx, 1, "2024-06-01", domain.MealBreakfast))
	require.NoError(t, env.service.DeleteEntry(ctx, 1, "2024-06-01", domain.MealBreakfast))

	entries, err = env.service.ListByDate(ctx, 1, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The meal row goes with the entry.
	var mealCount int64
	require.NoError(t, env.db.Model(&domain.Meal{}).Where("user_id = ?", 1).Count(&mealCount).Error)
	assert.Zero(t, mealCount)
}

func TestRestaurantVisitScenario(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	addEntry(t, env, 1, "2024-06-01", "breakfast", "Home Oatmeal", "home")
	addEntry(t, env, 1, "2024-06-01", "lunch", "Chipotle", "Chipotle")

	entries, err := env.service.ListByDate(ctx, 1, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.MealBreakfast, entries[0].MealType)
	assert.Equal(t, domain.MealLunch, entries[1].MealType)

	visits, err := env.service.ListRecentRestaurantVisits(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	require.NotNil(t, visits[0].Meal)
	assert.Equal(t, "Chipotle", visits[0].Meal.Location)
}

func TestRestaurantVisitsNewestFirstAndBounded(t *testing.T) {
	env := setupTestEnv(t)

	addEntry(t, env, 1, "2024-06-01", "lunch", "Tacos", "Taqueria")
	addEntry(t, env, 1, "2024-06-03", "dinner", "Ramen", "Noodle Bar")
	addEntry(t, env, 1, "2024-06-02", "dinner", "Pizza", "Slice House")

	visits, err := env.service.ListRecentRestaurantVisits(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "2024-06-03", visits[0].Date)
	assert.Equal(t, "2024-06-02", visits[1].Date)
}

func TestAddEntryBumpsRestaurantCounter(t *testing.T) {
	env := setupTestEnv(t)

	addEntry(t, env, 1, "2024-06-01", "lunch", "Burrito Bowl", "Chipotle")
	addEntry(t, env, 1, "2024-06-02", "dinner", "Tacos", "Chipotle")

	var counter domain.AnalyticsCounter
	err := env.db.Where("user_id = ? AND item_type = ? AND item_name = ?",
		1, domain.ItemRestaurant, "Chipotle").First(&counter).Error
	require.NoError(t, err)
	assert.EqualValues(t, 2, counter.Count)
	assert.Equal(t, 2024, counter.Year)
	assert.Equal(t, 6, counter.Month)
}

func TestHomeMealMatchingRecipeBumpsRecipeAndIngredients(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	recipe := &domain.Recipe{UserID: 1, Name: "Chicken Stir Fry"}
	require.NoError(t, env.recipes.Create(ctx, recipe, []repository.IngredientInput{
		{Name: "chicken breast", Amount: 2, Unit: "pieces"},
		{Name: "soy sauce", Amount: 2, Unit: "tbsp"},
	}))

	// Name matching is case-insensitive.
	addEntry(t, env, 1, "2024-06-01", "dinner", "chicken stir fry", "home")

	var recipeCounter domain.AnalyticsCounter
	err := env.db.Where("user_id = ? AND item_type = ?", 1, domain.ItemRecipe).First(&recipeCounter).Error
	require.NoError(t, err)
	assert.Equal(t, "Chicken Stir Fry", recipeCounter.ItemName)
	assert.EqualValues(t, 1, recipeCounter.Count)

	var ingredientCount int64
	require.NoError(t, env.db.Model(&domain.AnalyticsCounter{}).
		Where("user_id = ? AND item_type = ?", 1, domain.ItemIngredient).
		Count(&ingredientCount).Error)
	assert.EqualValues(t, 2, ingredientCount)
}

func TestHomeMealWithoutRecipeIsNotCounted(t *testing.T) {
	env := setupTestEnv(t)

	addEntry(t, env, 1, "2024-06-01", "dinner", "Mystery Leftovers", "home")

	var count int64
	require.NoError(t, env.db.Model(&domain.AnalyticsCounter{}).
		Where("user_id = ?", 1).Count(&count).Error)
	assert.Zero(t, count)
}
