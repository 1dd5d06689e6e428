package handler

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

	"todo_backend/internal/feature/items/domain/entity"
	"todo_backend/internal/feature/items/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// mockItemUsecase is a mock implementation of the ItemUsecase interface.
type mockItemUsecase struct {
	CreateFunc func(ctx context.Context, userID uint, in usecase.CreateItemInput) (*entity.Item, error)
	ListFunc   func(ctx context.Context, userID uint) ([]*entity.Item, error)
	UpdateFunc func(ctx context.Context, userID, id uint, in usecase.UpdateItemInput) (*entity.Item, error)
	DeleteFunc func(ctx context.Context, userID, id uint) error
}

func (m *mockItemUsecase) Create(ctx context.Context, userID uint, in usecase.CreateItemInput) (*entity.Item, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, in)
	}
	return &entity.Item{ID: 1, UserID: userID}, nil
}

func (m *mockItemUsecase) List(ctx context.Context, userID uint) ([]*entity.Item, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return []*entity.Item{}, nil
}

func (m *mockItemUsecase) Update(ctx context.Context, userID, id uint, in usecase.UpdateItemInput) (*entity.Item, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, in)
	}
	return nil, usecase.ErrItemNotFound
}

func (m *mockItemUsecase) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

// newItemRouter builds a router with a fixed principal, standing in for
// the session middleware.
func newItemRouter(uc ItemUsecase, p jwtmw.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewItemHandler(uc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextPrincipal, p)
		c.Next()
	})
	r.GET("/users/itemData", h.List)
	r.POST("/users/itemData", h.Create)
	r.PATCH("/users/itemData/:id", h.Update)
	r.DELETE("/users/itemData/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestItemHandler_List(t *testing.T) {
	t.Run("returns the principal's items", func(t *testing.T) {
		uc := &mockItemUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]*entity.Item, error) {
				assert.Equal(t, uint(7), userID)
				return []*entity.Item{{ID: 1, Name: "Pay rent", UserID: userID}}, nil
			},
		}
		r := newItemRouter(uc, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodGet, "/users/itemData", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Pay rent", items[0]["name"])
	})

	t.Run("empty list serializes as an array", func(t *testing.T) {
		r := newItemRouter(&mockItemUsecase{}, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodGet, "/users/itemData", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestItemHandler_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		uc := &mockItemUsecase{
			CreateFunc: func(ctx context.Context, userID uint, in usecase.CreateItemInput) (*entity.Item, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, "Pay rent", in.Name)
				return &entity.Item{ID: 1, UserID: userID, Name: in.Name}, nil
			},
		}
		r := newItemRouter(uc, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodPost, "/users/itemData",
			gin.H{"name": "Pay rent", "completionDate": "2025-01-01", "amount": "500"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"success": "Item added"}`, w.Body.String())
	})

	t.Run("missing required fields", func(t *testing.T) {
		r := newItemRouter(&mockItemUsecase{}, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodPost, "/users/itemData", gin.H{"amount": "500"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestItemHandler_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		uc := &mockItemUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.UpdateItemInput) (*entity.Item, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, uint(3), id)
				require.NotNil(t, in.Amount)
				assert.Equal(t, "750", *in.Amount)
				assert.Nil(t, in.Name)
				return &entity.Item{ID: id, UserID: userID, Amount: *in.Amount}, nil
			},
		}
		r := newItemRouter(uc, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodPatch, "/users/itemData/3", gin.H{"amount": "750"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown or foreign item", func(t *testing.T) {
		r := newItemRouter(&mockItemUsecase{}, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodPatch, "/users/itemData/99", gin.H{"amount": "750"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		r := newItemRouter(&mockItemUsecase{}, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodPatch, "/users/itemData/abc", gin.H{"amount": "750"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestItemHandler_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		r := newItemRouter(&mockItemUsecase{}, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodDelete, "/users/itemData/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": "Item deleted"}`, w.Body.String())
	})

	t.Run("unknown item", func(t *testing.T) {
		uc := &mockItemUsecase{
			DeleteFunc: func(ctx context.Context, userID, id uint) error {
				return usecase.ErrItemNotFound
			},
		}
		r := newItemRouter(uc, jwtmw.Principal{UserID: 7})

		w := doJSON(t, r, http.MethodDelete, "/users/itemData/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
