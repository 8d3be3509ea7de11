package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bitewrap/internal/config"
	"bitewrap/internal/database"
	"bitewrap/internal/middleware"
	"bitewrap/internal/modules/auth"
	"bitewrap/internal/modules/favorite"
	"bitewrap/internal/modules/insights"
	"bitewrap/internal/modules/logs"
	"bitewrap/internal/modules/places"
	"bitewrap/internal/modules/realtime"
	"bitewrap/internal/modules/recipes"
	jwtsvc "bitewrap/internal/pkg/jwt"
	"bitewrap/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	logRepo := repository.NewLogRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	hub := realtime.NewHub()

	authService := auth.NewService(userRepo, refreshRepo, j, cfg.RefreshTokenPepper, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService)

	logService := logs.NewService(logRepo, recipeRepo, hub)
	logHandler := logs.NewHandler(logService)

	recipeService := recipes.NewService(recipeRepo)
	recipeHandler := recipes.NewHandler(recipeService)

	insightService := insights.NewService(analyticsRepo)
	insightHandler := insights.NewHandler(insightService)

	favoriteHandler := favorite.NewHandler(favoriteRepo)

	placeService := places.NewService(cfg.PlacesAPIKey, cfg.PlacesBaseURL)
	placeHandler := places.NewHandler(placeService)

	realtimeHandler := realtime.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			logHandler.RegisterRoutes(protected)
			recipeHandler.RegisterRoutes(protected)
			insightHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			placeHandler.RegisterRoutes(protected)
			realtimeHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
