package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
	"recipe_backend/internal/platform/http/validation"
	jwtmw "recipe_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterTagName(v)
	}
	os.Exit(m.Run())
}

// mockRecipeUsecase is a mock implementation of the RecipeUsecase interface.
type mockRecipeUsecase struct {
	ListFunc   func(ctx context.Context, userID uint) ([]entity.Recipe, error)
	GetFunc    func(ctx context.Context, userID, id uint) (*entity.Recipe, error)
	CreateFunc func(ctx context.Context, userID uint, in usecase.CreateRecipeInput) (*entity.Recipe, error)
	UpdateFunc func(ctx context.Context, userID, id uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error)
	DeleteFunc func(ctx context.Context, userID, id uint) error
}

func (m *mockRecipeUsecase) List(ctx context.Context, userID uint) ([]entity.Recipe, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRecipeUsecase) Get(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, id)
	}
	return nil, usecase.ErrRecipeNotFound
}

func (m *mockRecipeUsecase) Create(ctx context.Context, userID uint, in usecase.CreateRecipeInput) (*entity.Recipe, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, in)
	}
	return nil, errors.New("create not mocked")
}

func (m *mockRecipeUsecase) Update(ctx context.Context, userID, id uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, in)
	}
	return nil, errors.New("update not mocked")
}

func (m *mockRecipeUsecase) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

// setupRecipeRouter registers the recipe routes behind a stub auth middleware
// that plants the given user ID in the context.
func setupRecipeRouter(uc RecipeUsecase, userID uint) *gin.Engine {
	handler := NewRecipeHandler(uc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	})
	r.GET("/recipes", handler.List)
	r.POST("/recipes", handler.Create)
	r.GET("/recipes/:id", handler.Get)
	r.PATCH("/recipes/:id", handler.Patch)
	r.PUT("/recipes/:id", handler.Put)
	r.DELETE("/recipes/:id", handler.Delete)
	return r
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecipeHandler_List(t *testing.T) {
	mockUC := &mockRecipeUsecase{
		ListFunc: func(ctx context.Context, userID uint) ([]entity.Recipe, error) {
			assert.Equal(t, uint(7), userID)
			return []entity.Recipe{
				{ID: 2, UserID: 7, Title: "Ramen", Description: "hidden in list"},
				{ID: 1, UserID: 7, Title: "Soba"},
			}, nil
		},
	}
	router := setupRecipeRouter(mockUC, 7)

	w := doJSON(router, http.MethodGet, "/recipes", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Ramen", body[0]["title"])
	// The list shape omits the description; only the detail shape carries it.
	_, hasDescription := body[0]["description"]
	assert.False(t, hasDescription)
}

func TestRecipeHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockGetFunc    func(ctx context.Context, userID, id uint) (*entity.Recipe, error)
		expectedStatus int
	}{
		{
			name: "success: detail shape with description",
			path: "/recipes/3",
			mockGetFunc: func(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
				assert.Equal(t, uint(3), id)
				return &entity.Recipe{ID: 3, UserID: 7, Title: "Ramen", Description: "rich broth"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "failure: absent or foreign row is not found",
			path: "/recipes/99",
			mockGetFunc: func(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
				return nil, usecase.ErrRecipeNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: malformed id never reaches the usecase",
			path:           "/recipes/abc",
			mockGetFunc:    nil,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: zero id never reaches the usecase",
			path:           "/recipes/0",
			mockGetFunc:    nil,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockRecipeUsecase{GetFunc: tt.mockGetFunc}
			if tt.mockGetFunc == nil {
				mockUC.GetFunc = func(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
					t.Fatal("usecase must not be called for a malformed id")
					return nil, nil
				}
			}
			router := setupRecipeRouter(mockUC, 7)

			w := doJSON(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "rich broth", body["description"])
			}
		})
	}
}

func TestRecipeHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		expectedStatus int
		expectedErrors map[string]string
	}{
		{
			name:           "success: recipe with tags",
			requestBody:    gin.H{"title": "Red Curry", "time_minutes": 30, "price": 12.5, "tags": []gin.H{{"name": "Thai"}}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing title",
			requestBody:    gin.H{"time_minutes": 30, "price": 12.5},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"title": "this field is required"},
		},
		{
			name:           "failure: price outside the column range",
			requestBody:    gin.H{"title": "Caviar", "time_minutes": 5, "price": 1500},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"price": "must be less than 1000"},
		},
		{
			name:           "failure: negative time",
			requestBody:    gin.H{"title": "Toast", "time_minutes": -5, "price": 1},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"time_minutes": "must be greater than or equal to 0"},
		},
		{
			name:           "failure: tag without a name",
			requestBody:    gin.H{"title": "Stew", "time_minutes": 60, "price": 8, "tags": []gin.H{{"name": ""}}},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: map[string]string{"name": "this field is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured usecase.CreateRecipeInput
			mockUC := &mockRecipeUsecase{
				CreateFunc: func(ctx context.Context, userID uint, in usecase.CreateRecipeInput) (*entity.Recipe, error) {
					captured = in
					return &entity.Recipe{ID: 1, UserID: userID, Title: in.Title}, nil
				},
			}
			router := setupRecipeRouter(mockUC, 7)

			w := doJSON(router, http.MethodPost, "/recipes", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedErrors != nil {
				var body struct {
					Errors map[string]string `json:"errors"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				for field, msg := range tt.expectedErrors {
					assert.Equal(t, msg, body.Errors[field])
				}
				return
			}
			assert.Equal(t, "Red Curry", captured.Title)
			require.Len(t, captured.Tags, 1)
			assert.Equal(t, "Thai", captured.Tags[0].Name)
		})
	}
}

func TestRecipeHandler_Patch(t *testing.T) {
	t.Run("only supplied fields reach the usecase", func(t *testing.T) {
		var captured usecase.UpdateRecipeInput
		mockUC := &mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error) {
				captured = in
				return &entity.Recipe{ID: id, UserID: userID, Title: *in.Title}, nil
			},
		}
		router := setupRecipeRouter(mockUC, 7)

		w := doJSON(router, http.MethodPatch, "/recipes/3", gin.H{"title": "Green Curry"})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, captured.Title)
		assert.Equal(t, "Green Curry", *captured.Title)
		assert.Nil(t, captured.Description)
		assert.Nil(t, captured.Price)
		assert.Nil(t, captured.Tags, "omitted tags must stay omitted")
	})

	t.Run("an empty tag list is passed through as empty, not omitted", func(t *testing.T) {
		var captured usecase.UpdateRecipeInput
		mockUC := &mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error) {
				captured = in
				return &entity.Recipe{ID: id, UserID: userID, Title: "Red Curry"}, nil
			},
		}
		router := setupRecipeRouter(mockUC, 7)

		w := doJSON(router, http.MethodPatch, "/recipes/3", gin.H{"tags": []gin.H{}})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, captured.Tags)
		assert.Empty(t, *captured.Tags)
	})

	t.Run("owner fields in the body are discarded", func(t *testing.T) {
		var captured usecase.UpdateRecipeInput
		mockUC := &mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error) {
				captured = in
				assert.Equal(t, uint(7), userID, "the caller from the token is the only owner the usecase sees")
				return &entity.Recipe{ID: id, UserID: userID, Title: *in.Title}, nil
			},
		}
		router := setupRecipeRouter(mockUC, 7)

		w := doJSON(router, http.MethodPatch, "/recipes/3", gin.H{"title": "Mine Now", "user_id": 999, "user": 999})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, captured.Title)
		assert.Equal(t, "Mine Now", *captured.Title)
	})

	t.Run("usecase validation failures map to 400", func(t *testing.T) {
		mockUC := &mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error) {
				return nil, usecase.ErrInvalidInput
			},
		}
		router := setupRecipeRouter(mockUC, 7)

		w := doJSON(router, http.MethodPatch, "/recipes/3", gin.H{"title": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecipeHandler_Put(t *testing.T) {
	t.Run("success: zero values count as present", func(t *testing.T) {
		var captured usecase.UpdateRecipeInput
		mockUC := &mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error) {
				captured = in
				return &entity.Recipe{ID: id, UserID: userID, Title: *in.Title}, nil
			},
		}
		router := setupRecipeRouter(mockUC, 7)

		w := doJSON(router, http.MethodPut, "/recipes/3", gin.H{
			"title":        "Waffles",
			"description":  "",
			"time_minutes": 10,
			"price":        9.99,
			"link":         "",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, captured.Description)
		assert.Equal(t, "", *captured.Description)
		require.NotNil(t, captured.Link)
		assert.Equal(t, "", *captured.Link)
	})

	t.Run("failure: missing scalar fields are reported per field", func(t *testing.T) {
		mockUC := &mockRecipeUsecase{}
		router := setupRecipeRouter(mockUC, 7)

		w := doJSON(router, http.MethodPut, "/recipes/3", gin.H{"title": "Waffles"})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		for _, field := range []string{"description", "time_minutes", "price", "link"} {
			assert.Equal(t, "this field is required", body.Errors[field], field)
		}
	})
}

func TestRecipeHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		mockDeleteFunc func(ctx context.Context, userID, id uint) error
		expectedStatus int
	}{
		{
			name:           "success: no content",
			mockDeleteFunc: func(ctx context.Context, userID, id uint) error { return nil },
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "failure: foreign row is not found",
			mockDeleteFunc: func(ctx context.Context, userID, id uint) error { return usecase.ErrRecipeNotFound },
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: storage error is an internal error",
			mockDeleteFunc: func(ctx context.Context, userID, id uint) error { return errors.New("connection reset") },
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockRecipeUsecase{DeleteFunc: tt.mockDeleteFunc}
			router := setupRecipeRouter(mockUC, 7)

			w := doJSON(router, http.MethodDelete, "/recipes/3", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
