package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"recipe_backend/internal/app/di"
	"recipe_backend/internal/app/router"
	authadapters "recipe_backend/internal/feature/auth/adapters"
	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	authusecase "recipe_backend/internal/feature/auth/usecase"
	recipeadapters "recipe_backend/internal/feature/recipes/adapters"
	recipehandler "recipe_backend/internal/feature/recipes/transport/handler"
	recipeusecase "recipe_backend/internal/feature/recipes/usecase"
	infradb "recipe_backend/internal/platform/db"
	infraredis "recipe_backend/internal/platform/redis"
	jwtmw "recipe_backend/internal/platform/jwt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis is optional; sessions fall back to Postgres without it.
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Storing sessions in Postgres.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	recipeRepo := recipeadapters.NewRecipePostgres(db)
	tagRepo := recipeadapters.NewTagPostgres(db)
	ingredientRepo := recipeadapters.NewIngredientPostgres(db)

	// Usecase
	tokens := jwtmw.NewGenerator(secret, accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, refreshTokenTTL)
	recipeUC := recipeusecase.NewRecipeUsecase(recipeRepo, tagRepo, ingredientRepo)
	tagUC := recipeusecase.NewTagUsecase(tagRepo)
	ingredientUC := recipeusecase.NewIngredientUsecase(ingredientRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	recipeH := recipehandler.NewRecipeHandler(recipeUC)
	tagH := recipehandler.NewTagHandler(tagUC)
	ingredientH := recipehandler.NewIngredientHandler(ingredientUC)

	r := router.NewRouter(authH, recipeH, tagH, ingredientH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
