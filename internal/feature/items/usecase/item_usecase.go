package usecase

import (
	"context"
	"fmt"

	"todo_backend/internal/feature/items/domain/entity"
	"todo_backend/internal/shared/sanitize"
)

// ItemRepository abstracts the persistence layer for item entities.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type ItemRepository interface {
	// Create persists a new item.
	Create(ctx context.Context, item *entity.Item) error

	// FindByOwner retrieves all items owned by userID, newest first.
	FindByOwner(ctx context.Context, userID uint) ([]*entity.Item, error)

	// FindByIDAndOwner retrieves one item scoped by owner.
	// Returns ErrItemNotFound when no such item exists for that owner.
	FindByIDAndOwner(ctx context.Context, id, userID uint) (*entity.Item, error)

	// Update persists the full item record.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes one item scoped by owner.
	// Returns ErrItemNotFound when no such item exists for that owner.
	Delete(ctx context.Context, id, userID uint) error
}

// CreateItemInput carries the fields of a new item. The owner comes
// from the authenticated principal, never from the request body.
type CreateItemInput struct {
	Name           string
	StartDate      string
	CompletionDate string
	Amount         string
}

// UpdateItemInput carries a partial update; nil fields are left untouched.
type UpdateItemInput struct {
	Name           *string
	StartDate      *string
	CompletionDate *string
	Amount         *string
}

// Empty reports whether the update carries no fields at all.
func (in UpdateItemInput) Empty() bool {
	return in.Name == nil && in.StartDate == nil && in.CompletionDate == nil && in.Amount == nil
}

// itemUsecase implements the item business logic.
type itemUsecase struct {
	items ItemRepository
}

// NewItemUsecase creates a new instance of itemUsecase.
func NewItemUsecase(items ItemRepository) *itemUsecase {
	return &itemUsecase{items: items}
}

// Create validates and persists a new item for the given owner.
// Free-text fields are stripped of markup before storage.
func (u *itemUsecase) Create(ctx context.Context, userID uint, in CreateItemInput) (*entity.Item, error) {
	if in.Name == "" || in.CompletionDate == "" {
		return nil, fmt.Errorf("%w: name and completionDate are required", ErrValidation)
	}

	item := &entity.Item{
		Name:           sanitize.Strict(in.Name),
		UserID:         userID,
		StartDate:      sanitize.Strict(in.StartDate),
		CompletionDate: sanitize.Strict(in.CompletionDate),
		Amount:         sanitize.Strict(in.Amount),
	}
	if err := u.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

// List returns the owner's items, newest first. The result is never
// nil so an empty list serializes as [] rather than null.
func (u *itemUsecase) List(ctx context.Context, userID uint) ([]*entity.Item, error) {
	items, err := u.items.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	if items == nil {
		items = []*entity.Item{}
	}
	return items, nil
}

// Update applies a partial field merge to one of the owner's items.
func (u *itemUsecase) Update(ctx context.Context, userID, id uint, in UpdateItemInput) (*entity.Item, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: no data provided for update", ErrValidation)
	}

	item, err := u.items.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		item.Name = sanitize.Strict(*in.Name)
	}
	if in.StartDate != nil {
		item.StartDate = sanitize.Strict(*in.StartDate)
	}
	if in.CompletionDate != nil {
		item.CompletionDate = sanitize.Strict(*in.CompletionDate)
	}
	if in.Amount != nil {
		item.Amount = sanitize.Strict(*in.Amount)
	}

	if err := u.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// Delete removes one of the owner's items.
func (u *itemUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.items.Delete(ctx, id, userID)
}
