package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"todo_backend/internal/feature/items/domain/entity"
)

// mockItemRepository is a mock implementation of the ItemRepository interface.
type mockItemRepository struct {
	CreateFunc           func(ctx context.Context, item *entity.Item) error
	FindByOwnerFunc      func(ctx context.Context, userID uint) ([]*entity.Item, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, userID uint) (*entity.Item, error)
	UpdateFunc           func(ctx context.Context, item *entity.Item) error
	DeleteFunc           func(ctx context.Context, id, userID uint) error
}

func (m *mockItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) FindByOwner(ctx context.Context, userID uint) ([]*entity.Item, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockItemRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*entity.Item, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, userID)
	}
	return nil, ErrItemNotFound
}

func (m *mockItemRepository) Update(ctx context.Context, item *entity.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

func TestItemUsecase_Create(t *testing.T) {
	t.Run("successful creation assigns the owner", func(t *testing.T) {
		var created *entity.Item
		repo := &mockItemRepository{
			CreateFunc: func(ctx context.Context, item *entity.Item) error {
				created = item
				return nil
			},
		}

		uc := NewItemUsecase(repo)
		item, err := uc.Create(context.Background(), 7, CreateItemInput{
			Name:           "Pay rent",
			CompletionDate: "2025-01-01",
			Amount:         "500",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("expected item to be persisted")
		}
		if item.UserID != 7 {
			t.Errorf("expected owner 7, got %d", item.UserID)
		}
		if item.Name != "Pay rent" || item.Amount != "500" {
			t.Errorf("unexpected item fields: %+v", item)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		tests := []struct {
			name string
			in   CreateItemInput
		}{
			{"missing name", CreateItemInput{CompletionDate: "2025-01-01"}},
			{"missing completion date", CreateItemInput{Name: "Pay rent"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewItemUsecase(&mockItemRepository{})
				_, err := uc.Create(context.Background(), 7, tt.in)

				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
			})
		}
	})

	t.Run("markup is stripped", func(t *testing.T) {
		var created *entity.Item
		repo := &mockItemRepository{
			CreateFunc: func(ctx context.Context, item *entity.Item) error {
				created = item
				return nil
			},
		}

		uc := NewItemUsecase(repo)
		_, err := uc.Create(context.Background(), 7, CreateItemInput{
			Name:           `<img src=x onerror=alert(1)>Pay rent`,
			CompletionDate: "2025-01-01",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(created.Name, "<img") {
			t.Errorf("expected markup to be stripped, got %q", created.Name)
		}
	})
}

func TestItemUsecase_List(t *testing.T) {
	t.Run("empty result is a non-nil slice", func(t *testing.T) {
		uc := NewItemUsecase(&mockItemRepository{})
		items, err := uc.List(context.Background(), 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items == nil {
			t.Error("expected empty slice, got nil")
		}
		if len(items) != 0 {
			t.Errorf("expected no items, got %d", len(items))
		}
	})

	t.Run("scopes the query by owner", func(t *testing.T) {
		repo := &mockItemRepository{
			FindByOwnerFunc: func(ctx context.Context, userID uint) ([]*entity.Item, error) {
				if userID != 7 {
					t.Errorf("expected owner 7, got %d", userID)
				}
				return []*entity.Item{{ID: 1, UserID: userID}}, nil
			},
		}

		uc := NewItemUsecase(repo)
		items, err := uc.List(context.Background(), 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Errorf("expected 1 item, got %d", len(items))
		}
	})
}

func TestItemUsecase_Update(t *testing.T) {
	stored := func() *entity.Item {
		return &entity.Item{
			ID: 1, UserID: 7, Name: "Pay rent",
			StartDate: "2024-12-01", CompletionDate: "2025-01-01", Amount: "500",
		}
	}

	t.Run("partial merge leaves absent fields untouched", func(t *testing.T) {
		var updated *entity.Item
		repo := &mockItemRepository{
			FindByIDAndOwnerFunc: func(ctx context.Context, id, userID uint) (*entity.Item, error) {
				return stored(), nil
			},
			UpdateFunc: func(ctx context.Context, item *entity.Item) error {
				updated = item
				return nil
			},
		}

		amount := "750"
		uc := NewItemUsecase(repo)
		item, err := uc.Update(context.Background(), 7, 1, UpdateItemInput{Amount: &amount})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Amount != "750" {
			t.Errorf("expected amount 750, got %q", updated.Amount)
		}
		if item.Name != "Pay rent" || item.CompletionDate != "2025-01-01" {
			t.Errorf("expected untouched fields to survive, got %+v", item)
		}
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		uc := NewItemUsecase(&mockItemRepository{})
		_, err := uc.Update(context.Background(), 7, 1, UpdateItemInput{})

		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		name := "x"
		uc := NewItemUsecase(&mockItemRepository{})
		_, err := uc.Update(context.Background(), 7, 99, UpdateItemInput{Name: &name})

		if !errors.Is(err, ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestItemUsecase_Delete(t *testing.T) {
	t.Run("scopes deletion by owner", func(t *testing.T) {
		repo := &mockItemRepository{
			DeleteFunc: func(ctx context.Context, id, userID uint) error {
				if id != 1 || userID != 7 {
					t.Errorf("expected id 1 owner 7, got id %d owner %d", id, userID)
				}
				return nil
			},
		}

		uc := NewItemUsecase(repo)
		if err := uc.Delete(context.Background(), 7, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing item propagates", func(t *testing.T) {
		repo := &mockItemRepository{
			DeleteFunc: func(ctx context.Context, id, userID uint) error {
				return ErrItemNotFound
			},
		}

		uc := NewItemUsecase(repo)
		err := uc.Delete(context.Background(), 7, 99)

		if !errors.Is(err, ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}
