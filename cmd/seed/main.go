package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bitewrap/internal/database"
	"bitewrap/internal/domain"
	"bitewrap/internal/modules/logs"
	"bitewrap/internal/repository"
)

// Seeds a local database with a demo account, a few recipes and two
// weeks of meal logs so the calendar and insights screens have data.
func main() {
	db, err := database.Connect("bitewrap.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM analytics")
	db.Exec("DELETE FROM logs")
	db.Exec("DELETE FROM meals")
	db.Exec("DELETE FROM recipe_ingredients")
	db.Exec("DELETE FROM ingredients")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM favorite_restaurants")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewLogRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &domain.User{
		Email:        "demo@bitewrap.app",
		PasswordHash: string(hash),
		Name:         "Demo User",
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal("seed user failed:", err)
	}

	seedRecipes := []struct {
		name, prep  string
		ingredients []repository.IngredientInput
	}{
		{"Overnight Oats", "10 min", []repository.IngredientInput{
			{Name: "rolled oats", Amount: 1, Unit: "cup"},
			{Name: "milk", Amount: 1, Unit: "cup"},
			{Name: "honey", Amount: 1, Unit: "tbsp"},
		}},
		{"Chicken Stir Fry", "25 min", []repository.IngredientInput{
			{Name: "chicken breast", Amount: 2, Unit: "pieces"},
			{Name: "soy sauce", Amount: 2, Unit: "tbsp"},
			{Name: "broccoli", Amount: 1, Unit: "head"},
			{Name: "rice", Amount: 1, Unit: "cup"},
		}},
		{"Margherita Pizza", "40 min", []repository.IngredientInput{
			{Name: "pizza dough", Amount: 1, Unit: "ball"},
			{Name: "mozzarella", Amount: 200, Unit: "g"},
			{Name: "basil", Amount: 1, Unit: "handful"},
		}},
	}
	for _, sr := range seedRecipes {
		recipe := &domain.Recipe{UserID: user.ID, Name: sr.name, Time: sr.prep}
		if err := recipeRepo.Create(ctx, recipe, sr.ingredients); err != nil {
			log.Fatal("seed recipe failed:", err)
		}
	}

	logService := logs.NewService(logRepo, recipeRepo, nil)

	meals := []struct {
		daysAgo  int
		mealType string
		name     string
		location string
	}{
		{0, "breakfast", "Overnight Oats", "home"},
		{0, "lunch", "Burrito Bowl", "Chipotle Mexican Grill"},
		{1, "dinner", "Chicken Stir Fry", "home"},
		{1, "lunch", "Smash Burger", "Stock & Barrel"},
		{2, "breakfast", "Overnight Oats", "home"},
		{2, "dinner", "Margherita Pizza", "home"},
		{3, "lunch", "Burrito Bowl", "Chipotle Mexican Grill"},
		{4, "dinner", "Pad Thai", "Kaizen"},
		{6, "dinner", "Chicken Stir Fry", "home"},
		{9, "lunch", "Veggie Pizza", "Tomato Head"},
		{12, "dinner", "Burrito Bowl", "Chipotle Mexican Grill"},
	}
	for _, m := range meals {
		date := time.Now().AddDate(0, 0, -m.daysAgo).Format("2006-01-02")
		_, err := logService.AddEntry(ctx, user.ID, logs.AddEntryRequest{
			Date:     date,
			MealType: m.mealType,
			Name:     m.name,
			Location: m.location,
		})
		if err != nil {
			log.Fatal("seed log failed:", err)
		}
	}

	favorites := []domain.FavoriteRestaurant{
		{UserID: user.ID, RestaurantName: "Chipotle Mexican Grill", RestaurantLocation: "478 S Gay St"},
		{UserID: user.ID, RestaurantName: "Stock & Barrel", RestaurantLocation: "35 Market Square"},
	}
	for i := range favorites {
		if err := favoriteRepo.Add(ctx, &favorites[i]); err != nil {
			log.Fatal("seed favorite failed:", err)
		}
	}

	log.Println("Seed complete: demo@bitewrap.app / password123")
}
