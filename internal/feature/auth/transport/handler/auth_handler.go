// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/feature/auth/domain/entity"
	"recipe_backend/internal/feature/auth/transport/http/dto"
	"recipe_backend/internal/feature/auth/usecase"
	"recipe_backend/internal/platform/http/validation"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user with the given email, password and name.
	Signup(ctx context.Context, email, password, name string) error
	// Login authenticates a user and returns a token pair on success.
	Login(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error)
	// Refresh rotates a refresh session and returns a new token pair.
	Refresh(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.LoginResult, error)
	// Logout revokes the session behind the refresh token.
	Logout(ctx context.Context, refreshToken string) error
	// CurrentUser returns the authenticated user's profile.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// clientInfo extracts the request's user agent and client IP.
func clientInfo(c *gin.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// bindError writes a 400 with per-field messages when the binding failure
// came from the validator, or a generic message otherwise.
func bindError(c *gin.Context, err error) {
	if msgs := validation.Messages(err); msgs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

// Signup handles the user registration endpoint.
// Returns 400 on validation failure, 409 on duplicate email, 201 on success.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		bindError(c, err)
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Name); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "signup failed"})
			return
		}
		slog.Warn("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "ok"})
}

// Login handles the user login endpoint.
// Returns 400 on validation failure, 401 on bad credentials, 200 with a
// token pair on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		bindError(c, err)
		return
	}
	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		// Do not leak whether the email exists.
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResp{Token: result.AccessToken, RefreshToken: result.RefreshToken})
}

// Refresh handles refresh-token rotation.
// Returns 401 when the presented token is unknown, expired or revoked.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, clientInfo(c))
	if err != nil {
		slog.Warn("refresh failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResp{Token: result.AccessToken, RefreshToken: result.RefreshToken})
}

// Logout revokes the presented refresh session.
// Returns 204 on success, 401 when the token is unknown.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResp{ID: user.ID, Email: user.Email, Name: user.Name})
}
