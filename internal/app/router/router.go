// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	recipehandler "recipe_backend/internal/feature/recipes/transport/handler"
	platformhandler "recipe_backend/internal/platform/http/handler"
	"recipe_backend/internal/platform/http/validation"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// NewRouter builds the Gin engine with all routes registered. Everything
// below the auth group requires a valid bearer token and answers 401
// otherwise.
func NewRouter(auth *authhandler.AuthHandler, recipes *recipehandler.RecipeHandler,
	tags *recipehandler.TagHandler, ingredients *recipehandler.IngredientHandler) *gin.Engine {
	// Report validation failures by JSON field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterTagName(v)
	}

	r := gin.Default()

	// Public routes.
	r.GET("/healthz", platformhandler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.Refresh)
	r.POST("/logout", auth.Logout)

	// Authenticated routes.
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.GET("/me", auth.Me)

		authed.GET("/recipes", recipes.List)
		authed.POST("/recipes", recipes.Create)
		authed.GET("/recipes/:id", recipes.Get)
		authed.PATCH("/recipes/:id", recipes.Patch)
		authed.PUT("/recipes/:id", recipes.Put)
		authed.DELETE("/recipes/:id", recipes.Delete)

		authed.GET("/tags", tags.List)
		authed.PATCH("/tags/:id", tags.Update)
		authed.DELETE("/tags/:id", tags.Delete)

		authed.GET("/ingredients", ingredients.List)
		authed.PATCH("/ingredients/:id", ingredients.Update)
		authed.DELETE("/ingredients/:id", ingredients.Delete)
	}

	return r
}
