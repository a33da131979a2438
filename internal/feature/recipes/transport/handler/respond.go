// Package handler provides the HTTP handlers for the recipes feature.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/feature/recipes/usecase"
	"recipe_backend/internal/platform/http/validation"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// authUserID returns the caller's user ID placed in the context by the JWT
// middleware.
func authUserID(c *gin.Context) uint {
	return c.GetUint(jwtmw.ContextUserID)
}

// pathID parses the :id path parameter. A malformed ID behaves like a row
// that does not exist.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// bindError writes a 400 with per-field messages when possible.
func bindError(c *gin.Context, err error) {
	slog.Warn("request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	if msgs := validation.Messages(err); msgs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

// writeError maps usecase errors to HTTP statuses. Ownership failures have
// already been folded into the not-found sentinels by the repositories, so
// a 403 can never leak the existence of another user's rows.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrRecipeNotFound),
		errors.Is(err, usecase.ErrTagNotFound),
		errors.Is(err, usecase.ErrIngredientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		slog.Error("request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
