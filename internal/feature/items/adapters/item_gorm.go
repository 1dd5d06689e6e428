// Package adapters provides repository implementations for the items feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/items/domain/entity"
	"todo_backend/internal/feature/items/usecase"
)

// itemGorm is a GORM implementation of the ItemRepository interface.
type itemGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure itemGorm implements ItemRepository.
var _ usecase.ItemRepository = (*itemGorm)(nil)

// NewItemGorm creates a new instance of itemGorm.
func NewItemGorm(db *gorm.DB) *itemGorm {
	return &itemGorm{db: db}
}

// Create persists a new item.
func (r *itemGorm) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByOwner retrieves all items for userID, newest first.
func (r *itemGorm) FindByOwner(ctx context.Context, userID uint) ([]*entity.Item, error) {
	var items []*entity.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDAndOwner retrieves one item scoped by owner. Foreign items
// surface as ErrItemNotFound, never as a permission error.
func (r *itemGorm) FindByIDAndOwner(ctx context.Context, id, userID uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Update persists the full item record.
func (r *itemGorm) Update(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes one item scoped by owner.
func (r *itemGorm) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}
