package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	apperrors "github.com/ferndale/nutritrack-backend/internal/pkg/errors"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type stubMealService struct {
	meals       []*types.Meal
	ingredients []*types.Ingredient
	meal        *types.Meal
	err         error

	createdName  string
	attachedUser uint
}

func (s *stubMealService) GetAll(ctx context.Context) ([]*types.Meal, error) {
	return s.meals, s.err
}

func (s *stubMealService) GetByID(ctx context.Context, mealID uint) (*types.Meal, error) {
	return s.meal, s.err
}

func (s *stubMealService) GetIngredients(ctx context.Context, mealID uint) ([]*types.Ingredient, error) {
	return s.ingredients, s.err
}

func (s *stubMealService) GetByUserID(ctx context.Context, userID uint) ([]*types.Meal, error) {
	return s.meals, s.err
}

func (s *stubMealService) Create(ctx context.Context, name string) (*types.Meal, error) {
	s.createdName = name
	return s.meal, s.err
}

func (s *stubMealService) AttachToUser(ctx context.Context, userID uint, name string) (*types.Meal, error) {
	s.attachedUser = userID
	s.createdName = name
	return s.meal, s.err
}

func (s *stubMealService) Delete(ctx context.Context, mealID uint) error {
	return s.err
}

func (s *stubMealService) DetachAllFromUser(ctx context.Context, userID uint) error {
	return s.err
}

func (s *stubMealService) DetachFromUser(ctx context.Context, userID, mealID uint) error {
	return s.err
}

func newMealRouter(t *testing.T, svc *stubMealService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	require.NoError(t, err)
	h := NewMealHandler(log, svc)

	r := gin.New()
	r.GET("/api/meals", h.GetAll)
	r.POST("/api/meals", h.Create)
	r.GET("/api/meals/:meal-id", h.GetOne)
	r.DELETE("/api/meals/:meal-id", h.Delete)
	r.GET("/api/meals/:meal-id/ingredients", h.GetIngredients)
	r.GET("/api/users/:user-id/meals", h.GetByUser)
	r.POST("/api/users/:user-id/meals", h.CreateForUser)
	r.DELETE("/api/users/:user-id/meals", h.DeleteAllForUser)
	r.DELETE("/api/users/:user-id/meals/:meal-id", h.DeleteOneForUser)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMealHandlerCreate(t *testing.T) {
	svc := &stubMealService{meal: &types.Meal{ID: 7, Name: "cheeseburger"}}
	r := newMealRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/meals", gin.H{"name": "cheeseburger"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "cheeseburger", svc.createdName)

	var got types.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint(7), got.ID)
}

func TestMealHandlerCreateErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unresolvable name", apperrors.ErrUnresolvableName, http.StatusBadRequest, "unresolvable_name"},
		{"duplicate name", apperrors.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{"validation", apperrors.NewValidationError(map[string]string{"name": "must not be blank"}), http.StatusBadRequest, "invalid_input"},
		{"provider outage", context.DeadlineExceeded, http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMealRouter(t, &stubMealService{err: tc.err})

			w := doJSON(r, http.MethodPost, "/api/meals", gin.H{"name": "anything"})
			require.Equal(t, tc.wantStatus, w.Code)

			var envelope ErrorEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, tc.wantCode, envelope.Error.Code)
		})
	}
}

func TestMealHandlerCreateValidationDetails(t *testing.T) {
	r := newMealRouter(t, &stubMealService{
		err: apperrors.NewValidationError(map[string]string{"name": "must not be blank"}),
	})

	w := doJSON(r, http.MethodPost, "/api/meals", gin.H{"name": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "must not be blank", envelope.Error.Details["name"])
}

func TestMealHandlerCreateMalformedBody(t *testing.T) {
	r := newMealRouter(t, &stubMealService{})

	req := httptest.NewRequest(http.MethodPost, "/api/meals", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealHandlerGetAllEmptyIs404(t *testing.T) {
	r := newMealRouter(t, &stubMealService{})

	w := doJSON(r, http.MethodGet, "/api/meals", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMealHandlerGetOne(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r := newMealRouter(t, &stubMealService{meal: &types.Meal{ID: 3, Name: "salad"}})
		w := doJSON(r, http.MethodGet, "/api/meals/3", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})
	t.Run("missing", func(t *testing.T) {
		r := newMealRouter(t, &stubMealService{err: apperrors.ErrNotFound})
		w := doJSON(r, http.MethodGet, "/api/meals/99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("garbage id", func(t *testing.T) {
		r := newMealRouter(t, &stubMealService{})
		w := doJSON(r, http.MethodGet, "/api/meals/abc", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMealHandlerDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		r := newMealRouter(t, &stubMealService{})
		w := doJSON(r, http.MethodDelete, "/api/meals/3", nil)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})
	t.Run("missing", func(t *testing.T) {
		r := newMealRouter(t, &stubMealService{err: apperrors.ErrNotFound})
		w := doJSON(r, http.MethodDelete, "/api/meals/99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMealHandlerUserMeals(t *testing.T) {
	t.Run("attach routes user id", func(t *testing.T) {
		svc := &stubMealService{meal: &types.Meal{ID: 5, Name: "omelette"}}
		r := newMealRouter(t, svc)
		w := doJSON(r, http.MethodPost, "/api/users/12/meals", gin.H{"name": "omelette"})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(12), svc.attachedUser)
	})
	t.Run("empty user meals is 404", func(t *testing.T) {
		r := newMealRouter(t, &stubMealService{})
		w := doJSON(r, http.MethodGet, "/api/users/12/meals", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("detach all", func(t *testing.T) {
		r := newMealRouter(t, &stubMealService{})
		w := doJSON(r, http.MethodDelete, "/api/users/12/meals", nil)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
	t.Run("detach one missing pair", func(t *testing.T) {
		r := newMealRouter(t, &stubMealService{err: apperrors.ErrNotFound})
		w := doJSON(r, http.MethodDelete, "/api/users/12/meals/3", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
